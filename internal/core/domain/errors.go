package domain

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidIdentifier
	KindNotFound
	KindInvalidQuantity
	KindEmptyCart
	KindMissingBuyerInfo
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindNotFound:
		return "NotFound"
	case KindInvalidQuantity:
		return "InvalidQuantity"
	case KindEmptyCart:
		return "EmptyCart"
	case KindMissingBuyerInfo:
		return "MissingBuyerInfo"
	}
	return "Unknown"
}

// An Error is a rejected user action. Its text is shown to the user as is.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

var (
	ErrEmptyTitle        = &Error{KindValidation, "Titill má ekki vera tómur."}
	ErrEmptyDescription  = &Error{KindValidation, "Lýsing má ekki vera tóm."}
	ErrInvalidPrice      = &Error{KindValidation, "Verð verður að vera jákvæð heiltala."}
	ErrInvalidIdentifier = &Error{KindInvalidIdentifier, "Auðkenni vöru er ekki löglegt, verður að vera heiltala stærri en 0."}
	ErrNotFound          = &Error{KindNotFound, "Vara fannst ekki."}
	ErrInvalidQuantity   = &Error{KindInvalidQuantity, "Fjöldi er ekki löglegur, lágmark 1 og hámark 99."}
	ErrEmptyCart         = &Error{KindEmptyCart, "Karfan er tóm."}
	ErrMissingBuyerInfo  = &Error{KindMissingBuyerInfo, "Nafn og heimilisfang eru nauðsynleg gögn."}
)

// KindOf returns the kind of the first [*Error] in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user facing text of err. Errors that are not
// [*Error] are returned with their full text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return err.Error()
}
