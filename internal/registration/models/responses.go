package models

// RegistrationResponse is the printable form of an accepted registration.
type RegistrationResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	BirthDate string `json:"birth_date"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
}

func ToResponse(r *Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID.String(),
		FirstName: r.FirstName.String(),
		BirthDate: r.BirthDate.String(),
		Mobile:    r.Mobile.String(),
		Address:   r.Address.String(),
	}
}
