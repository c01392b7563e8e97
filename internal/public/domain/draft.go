package domain

import "strings"

// Draft is the in-progress business registration. It is a value type:
// every setter returns a new Draft, so partially filled state can never
// leak between flows. The sealed BusinessRecord is produced only at
// submit time, once the logo has a durable URL.
type Draft struct {
	businessName  string
	address       string
	category      string
	contactNumber string
	logoHandle    string
}

// NewDraft returns an empty draft, created on entering the registration flow.
func NewDraft() Draft {
	return Draft{}
}

func (d Draft) WithBusinessName(name string) Draft {
	d.businessName = name
	return d
}

func (d Draft) WithAddress(address string) Draft {
	d.address = address
	return d
}

func (d Draft) WithCategory(category string) Draft {
	d.category = category
	return d
}

func (d Draft) WithContactNumber(number string) Draft {
	d.contactNumber = number
	return d
}

// WithLogoHandle records the local resource handle returned by the media
// picker. The handle is device-local and never persisted.
func (d Draft) WithLogoHandle(handle string) Draft {
	d.logoHandle = handle
	return d
}

func (d Draft) BusinessName() string  { return d.businessName }
func (d Draft) Address() string       { return d.address }
func (d Draft) Category() string      { return d.category }
func (d Draft) ContactNumber() string { return d.contactNumber }
func (d Draft) LogoHandle() string    { return d.logoHandle }

// Validate reports the first missing required field. All five fields,
// including the local logo handle, must be present before submission may
// contact any remote service.
func (d Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.businessName) == "":
		return &ValidationError{Field: "businessName"}
	case strings.TrimSpace(d.address) == "":
		return &ValidationError{Field: "address"}
	case strings.TrimSpace(d.category) == "":
		return &ValidationError{Field: "category"}
	case strings.TrimSpace(d.contactNumber) == "":
		return &ValidationError{Field: "contactNumber"}
	case strings.TrimSpace(d.logoHandle) == "":
		return &ValidationError{Field: "logo"}
	}
	return nil
}

// Seal produces the immutable BusinessRecord referencing the uploaded
// logo. It refuses to seal a draft that still fails validation or a logo
// without a durable URL, so no record can ever point at a local-only
// resource handle.
func (d Draft) Seal(logoURL string) (BusinessRecord, error) {
	if err := d.Validate(); err != nil {
		return BusinessRecord{}, err
	}
	if strings.TrimSpace(logoURL) == "" {
		return BusinessRecord{}, &ValidationError{Field: "logoUrl"}
	}
	return BusinessRecord{
		BusinessName:  d.businessName,
		Address:       d.address,
		Category:      d.category,
		ContactNumber: d.contactNumber,
		LogoURL:       logoURL,
	}, nil
}
