package common

const (
	// MaxLogoUploadBytes caps the multipart logo file accepted at registration.
	MaxLogoUploadBytes = 5 << 20
	// MaxRegisterFormBytes limits the whole multipart registration request.
	MaxRegisterFormBytes = 6 << 20
)
