package service

// QRCodeService renders QR codes for support tickets.
type QRCodeService interface {
	// GenerateTicketQR returns a PNG that links to the ticket's support page.
	GenerateTicketQR(ticketID string) ([]byte, error)

	// TicketURL returns the link encoded by GenerateTicketQR.
	TicketURL(ticketID string) string
}
