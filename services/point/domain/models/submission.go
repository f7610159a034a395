package models

// ImageUpload is an uploaded binary as received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string // declared by the client; the image store sniffs the real type
	Data        []byte
}

// Size returns the payload length in bytes.
func (u *ImageUpload) Size() int64 { return int64(len(u.Data)) }

// Submission is the raw registration payload before validation. Numeric and
// list fields stay in their wire form so the registration service owns parsing.
type Submission struct {
	Name      string
	Email     string
	Whatsapp  string
	UF        string
	City      string
	Latitude  string
	Longitude string
	Items     string // comma-separated item ids
	Image     *ImageUpload
}
