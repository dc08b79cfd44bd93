package service

// QRCodeService renders QR images for card links.
type QRCodeService interface {
	// GenerateCardQR encodes content, normally a public card URL, as a PNG.
	GenerateCardQR(content string) ([]byte, error)
}
