package shipping

// Settings is the single process-wide shipping configuration. It is seeded
// with defaults at startup, replaced field-by-field by admin updates and lost
// on restart. Rate values are stored as given; nothing rejects negative or
// nonsensical numbers.
type Settings struct {
	FreeShippingThreshold float64            `json:"freeShippingThreshold"`
	StandardShipping      float64            `json:"standardShipping"`
	ExpressShipping       float64            `json:"expressShipping"`
	CityWiseShipping      map[string]float64 `json:"cityWiseShipping"`
}

// Patch is a partial update; nil fields keep the stored value. A supplied
// city map replaces the whole map, old entries are not merged in.
type Patch struct {
	FreeShippingThreshold *float64           `json:"freeShippingThreshold"`
	StandardShipping      *float64           `json:"standardShipping"`
	ExpressShipping       *float64           `json:"expressShipping"`
	CityWiseShipping      map[string]float64 `json:"cityWiseShipping"`
}

// DefaultSettings returns the boot-time configuration (rates in PKR).
func DefaultSettings() Settings {
	return Settings{
		FreeShippingThreshold: 2000,
		StandardShipping:      200,
		ExpressShipping:       500,
		CityWiseShipping: map[string]float64{
			"karachi":   150,
			"lahore":    180,
			"islamabad": 200,
			"other":     250,
		},
	}
}
