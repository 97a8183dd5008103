package varying

import "fmt"

type ErrTypeMismatch struct {
	Want, Have Kind
	// Narrowing is set when the kinds agree but the requested width would
	// truncate the stored value's type.
	Narrowing bool
}

func (e ErrTypeMismatch) Error() string {
	if e.Narrowing {
		return fmt.Sprintf("narrowing conversion of stored %v is not permitted", e.Have)
	}
	return fmt.Sprintf("cannot retrieve stored %v as %v", e.Have, e.Want)
}

type ErrInvalidCast struct {
	Want string
	Have TypeID
}

func (e ErrInvalidCast) Error() string {
	return fmt.Sprintf("handle to %s does not support %s", e.Have, e.Want)
}
