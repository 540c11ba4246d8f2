package pos

// Wire values match the original dataset (Indonesian labels), so an
// existing snapshot loads unchanged.

type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "Belum Bayar"
	StatusPaid   PaymentStatus = "Sudah Bayar"
)

type PaymentMethod string

const (
	MethodCash PaymentMethod = "Cash"
	MethodQRIS PaymentMethod = "QRIS"
)

func ValidStatus(s PaymentStatus) bool { return s == StatusUnpaid || s == StatusPaid }
func ValidMethod(m PaymentMethod) bool { return m == MethodCash || m == MethodQRIS }
