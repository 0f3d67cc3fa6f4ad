package model

// Application is a membership application as submitted from the join page.
type Application struct {
	FirstName       string `form:"firstName" json:"firstName" binding:"required"`
	LastName        string `form:"lastName" json:"lastName" binding:"required"`
	Title           string `form:"title" json:"title"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Phone           string `form:"phone" json:"phone" binding:"required"`
	BusinessName    string `form:"businessName" json:"businessName" binding:"required"`
	MembershipLevel string `form:"membershipLevel" json:"membershipLevel" binding:"required,oneof=np bronze silver gold"`
	Description     string `form:"description" json:"description"`
	Timestamp       string `form:"timestamp" json:"timestamp"`
}
