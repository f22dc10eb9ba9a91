package stockedit

import (
	"fmt"

	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	Kind    NotificationKind
	Message string
}

const (
	msgEditionSaved        = "Vos modifications ont bien été enregistrées"
	msgCreationSaved       = "Brouillon sauvegardé dans la liste des offres"
	msgFormErrors          = "Une ou plusieurs erreurs sont présentes dans le formulaire"
	msgSubmitFailed        = "Une erreur est survenue lors de la mise à jour de vos stocks"
	msgStockDeleted        = "Le stock a été supprimé."
	msgDeleteSynchronized  = "La suppression des stocks de cette offre n’est possible que depuis le logiciel synchronisé."
	msgDeleteFailed        = "Une erreur est survenue lors de la suppression du stock."
	msgRecurrenceSaved     = "Les dates ont bien été ajoutées"
	msgRecurrenceFailed    = "Une erreur est survenue lors de l’enregistrement de vos dates"
	msgBookingImpactTitle  = "Des réservations sont en cours pour cette offre"
	msgDiscardChangesTitle = "Les informations non enregistrées seront perdues"
	msgDeleteBookedTitle   = "Voulez-vous supprimer cette date ?"
)

func successMessage(mode offer.WizardMode) string {
	if mode == offer.ModeEdition {
		return msgEditionSaved
	}
	return msgCreationSaved
}

// ReadOnlyURL is where the operator lands after a successful save.
func ReadOnlyURL(offerID int64, mode offer.WizardMode) string {
	if mode == offer.ModeCreation {
		return fmt.Sprintf("/offre/individuelle/%d/creation/recapitulatif", offerID)
	}
	return fmt.Sprintf("/offre/individuelle/%d/dates", offerID)
}

type Row struct {
	stock.Entry
	Constraints stock.FieldConstraints
}

type Confirmation struct {
	Dialog Dialog
	Title  string
	Rows   []int
}

// View is what the editing screen renders.
type View struct {
	SessionID       string
	OfferID         int64
	Mode            offer.WizardMode
	Rows            []Row
	Filter          stocklist.FilterState
	Query           string
	Page            int
	PageCount       int
	TotalCount      int
	HasStocks       bool
	Dirty           bool
	Loading         bool
	Confirmation    *Confirmation
	PriceCategories []offer.PriceCategoryOption
	Timezone        string
}

// Result is the outcome of an operation: the new view plus what to tell the operator.
type Result struct {
	View             View
	Notification     *Notification
	RedirectTo       string
	ValidationErrors stock.ValidationErrors
}

func buildView(s *Session, today string, pageSize int) View {
	rows := make([]Row, 0, len(s.Live))
	for _, e := range s.Live {
		rows = append(rows, Row{
			Entry:       e,
			Constraints: stock.MakeFieldConstraints(e, today, len(s.Offer.PriceCategories)),
		})
	}

	v := View{
		SessionID:       s.ID.String(),
		OfferID:         s.OfferID,
		Mode:            s.Mode,
		Rows:            rows,
		Filter:          s.Filter,
		Query:           s.Filter.Query().Encode(),
		Page:            s.Filter.Page,
		PageCount:       s.PageCount(pageSize),
		TotalCount:      s.TotalCount,
		HasStocks:       s.TotalCount > 0,
		Dirty:           s.IsDirty(),
		Loading:         s.Loading,
		PriceCategories: s.Offer.PriceCategoryOptions(),
		Timezone:        localtime.TimezoneName(s.Offer.DepartementCode),
	}

	if s.Pending.Dialog != DialogNone {
		v.Confirmation = &Confirmation{Dialog: s.Pending.Dialog, Rows: s.Pending.Rows}
		switch s.Pending.Dialog {
		case DialogBookingImpact:
			v.Confirmation.Title = msgBookingImpactTitle
		case DialogDiscardChanges:
			v.Confirmation.Title = msgDiscardChangesTitle
		case DialogDeleteBooked:
			v.Confirmation.Title = msgDeleteBookedTitle
		}
	}
	return v
}
