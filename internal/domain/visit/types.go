package visit

type Kind string

const (
	KindBooking Kind = "booking"
	// KindBlock is an administrator-held slot with no real patient behind it.
	KindBlock Kind = "block"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBooking, KindBlock:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}
