package entity

// Clinic owns one escrow wallet and one appointment table keyed by creation
// timestamp. Appointment keys are unique within the clinic; records are never
// deleted.
type Clinic struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`

	Wallet       *Wallet                 `json:"wallet"`
	Appointments map[uint64]*Appointment `json:"appointments"`
}

func NewClinic(address, name, phone, email, location string) *Clinic {
	return &Clinic{
		Address:      address,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Location:     location,
		Wallet:       NewWallet(address),
		Appointments: make(map[uint64]*Appointment),
	}
}

// HasAppointment reports whether the table key is already taken.
func (c *Clinic) HasAppointment(key uint64) bool {
	_, ok := c.Appointments[key]
	return ok
}

// AppointmentSnapshot returns an unordered copy of the appointment table at
// call time.
func (c *Clinic) AppointmentSnapshot() []*Appointment {
	out := make([]*Appointment, 0, len(c.Appointments))
	for _, appt := range c.Appointments {
		out = append(out, appt)
	}
	return out
}
