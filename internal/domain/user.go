package domain

type User struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	IsStaff      bool   `json:"is_staff"`
	CreatedOn    string `json:"created_on"`
}
