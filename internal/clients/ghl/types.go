package ghl

// Contact is a CRM contact record within a location.
type Contact struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Tags  []string `json:"tags"`
}

// User is a CRM user record within a location.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type locationsResponse struct {
	Data []string `json:"data"`
}

type locationTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type contactsResponse struct {
	Contacts []Contact `json:"contacts"`
}

type usersResponse struct {
	Users []User `json:"users"`
}

type updateContactRequest struct {
	Phone string   `json:"phone"`
	Tags  []string `json:"tags,omitempty"`
}

type updateUserRequest struct {
	Phone         string `json:"phone"`
	IsEjectedUser bool   `json:"isEjectedUser"`
}
