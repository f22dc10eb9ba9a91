package offer

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusDraft     Status = "DRAFT"
	StatusExpired   Status = "EXPIRED"
	StatusInactive  Status = "INACTIVE"
	StatusPending   Status = "PENDING"
	StatusRejected  Status = "REJECTED"
	StatusScheduled Status = "SCHEDULED"
	StatusSoldOut   Status = "SOLD_OUT"
)

// WizardMode tells whether the stocks are being entered while creating the
// offer or while editing an existing one.
type WizardMode string

const (
	ModeCreation WizardMode = "creation"
	ModeEdition  WizardMode = "edition"
)

func (m WizardMode) Valid() bool {
	return m == ModeCreation || m == ModeEdition
}
