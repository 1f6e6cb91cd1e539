package booking

// Displaces reports whether an applicant of class c outranks an occupant of
// class occupant. Internal academic use outranks external use; equal
// classes never displace each other.
func (c ApplicantClass) Displaces(occupant ApplicantClass) bool {
	return c.IsInternal() && occupant == ClassExternal
}

// PlanDisplacement splits the occupants of one slot into the bookings the
// applicant may displace. Any occupant left over is a conflict.
func PlanDisplacement(applicant ApplicantClass, occupants []*Booking) ([]*Booking, error) {
	var displace []*Booking
	blocked := false
	for _, o := range occupants {
		if !o.Occupies() {
			continue
		}
		if applicant.Displaces(o.applicantClass) {
			displace = append(displace, o)
			continue
		}
		blocked = true
	}
	if blocked {
		return nil, ErrSlotConflict
	}
	return displace, nil
}
