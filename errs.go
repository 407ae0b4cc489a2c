package notation

import (
	"errors"

	"github.com/notatree/notation/note"
)

var (
	// ErrInvalidSource: a constructor or copy source is not an object or
	// array.
	ErrInvalidSource = errors.New("invalid source")
	// ErrInvalidDestination: a copy/move target accessor is missing or
	// not bound to a container.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrInvalidSyntax: a path or pattern violates the notation grammar.
	ErrInvalidSyntax = note.ErrSyntax
	// ErrMissingIndex: strict-mode miss whose parent is an array.
	ErrMissingIndex = errors.New("missing index")
	// ErrMissingProperty: strict-mode miss whose parent is an object.
	ErrMissingProperty = errors.New("missing property")
	// ErrInsertOnNonArray: insert-mode set addressed an object member.
	ErrInsertOnNonArray = errors.New("insert on non-array")
	// ErrTypeMismatch: a numeric note addressed an object, or a key note
	// an array.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIntegrity: strict filtering found an existing value whose
	// container kind conflicts with an emptied-container pattern.
	ErrIntegrity = errors.New("integrity error")
	// ErrInvalidNotationsObject: merge/separate input had the wrong shape.
	ErrInvalidNotationsObject = errors.New("invalid notations object")
)
