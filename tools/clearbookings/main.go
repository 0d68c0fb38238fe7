// Maintenance tool: wipes every booking record. Used to reset demo
// environments; there is no undo.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"healthtick/config"
	"healthtick/database"
	bookingRepo "healthtick/database/repository/booking"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	repo := bookingRepo.NewMongoBookingRepo()

	fmt.Print("This will permanently delete ALL bookings. Type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Println("Aborted.")
		return
	}

	deleted, err := repo.DeleteAll(context.Background())
	if err != nil {
		log.Fatalf("failed to clear bookings: %v", err)
	}
	fmt.Printf("Deleted %d bookings.\n", deleted)
}
