package dto

// ShareMessageResponse carries a composed WhatsApp message and its deep
// link. NeedsPhone signals the owner has no phone on file yet so the client
// can show the phone prompt before sharing.
type ShareMessageResponse struct {
	Message    string `json:"message"`
	Link       string `json:"link"`
	NeedsPhone bool   `json:"needs_phone,omitempty"`
}
