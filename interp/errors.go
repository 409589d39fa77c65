package interp

import "errors"

// ErrNilCollaborator is returned by New when a required collaborator is nil.
var ErrNilCollaborator = errors.New("interp: nil collaborator")
