package clientdir

import "healthtick/models"

// Demo client roster used until a real directory backend is wired in.
var seedClients = []models.Client{
	{ID: "client-1", Name: "Sriram Kumar", Phone: "+91 9876543210"},
	{ID: "client-2", Name: "Shilpa Sharma", Phone: "+91 9876543211"},
	{ID: "client-3", Name: "Rahul Verma", Phone: "+91 9876543212"},
	{ID: "client-4", Name: "Priya Patel", Phone: "+91 9876543213"},
	{ID: "client-5", Name: "Amit Singh", Phone: "+91 9876543214"},
	{ID: "client-6", Name: "Neha Gupta", Phone: "+91 9876543215"},
	{ID: "client-7", Name: "Vikram Joshi", Phone: "+91 9876543216"},
	{ID: "client-8", Name: "Kavya Reddy", Phone: "+91 9876543217"},
	{ID: "client-9", Name: "Arjun Nair", Phone: "+91 9876543218"},
	{ID: "client-10", Name: "Deepika Rao", Phone: "+91 9876543219"},
	{ID: "client-11", Name: "Rajesh Mehta", Phone: "+91 9876543220"},
	{ID: "client-12", Name: "Sunita Agarwal", Phone: "+91 9876543221"},
	{ID: "client-13", Name: "Karthik Iyer", Phone: "+91 9876543222"},
	{ID: "client-14", Name: "Anita Desai", Phone: "+91 9876543223"},
	{ID: "client-15", Name: "Manish Tiwari", Phone: "+91 9876543224"},
	{ID: "client-16", Name: "Ritu Malhotra", Phone: "+91 9876543225"},
	{ID: "client-17", Name: "Suresh Chandra", Phone: "+91 9876543226"},
	{ID: "client-18", Name: "Pooja Khanna", Phone: "+91 9876543227"},
	{ID: "client-19", Name: "Anil Bhatt", Phone: "+91 9876543228"},
	{ID: "client-20", Name: "Meera Saxena", Phone: "+91 9876543229"},
}
