package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtick/services/clientdir"
)

// ClientHandler exposes the read-only client directory.
type ClientHandler struct {
	Directory clientdir.Directory
}

func NewClientHandler(dir clientdir.Directory) *ClientHandler {
	return &ClientHandler{Directory: dir}
}

// ListClients returns the directory, filtered by the optional ?q= substring
// search over name and phone.
func (h *ClientHandler) ListClients(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, gin.H{"clients": h.Directory.Search(q)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": h.Directory.List()})
}

// GetClientByID resolves a single client.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.Directory.Lookup(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}
