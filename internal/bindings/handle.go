package bindings

import (
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"
)

// Handle is a reference to a constructed native instance, exposed to the
// host environment.
//
// A non-owning handle implements the no-delete holder policy: the native
// side manages the instance's lifetime, and Close never reaches the
// underlying object. Host code must treat such handles as borrows.
type Handle struct {
	id       uuid.UUID
	typeName string
	native   any
	owned    bool
	closed   bool
}

// ID returns the unique instance identifier assigned at construction.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// TypeName returns the binding type name the instance was constructed as.
func (h *Handle) TypeName() string {
	return h.typeName
}

// Native returns the underlying native instance.
func (h *Handle) Native() any {
	return h.native
}

// Owned reports whether this handle owns the underlying instance.
func (h *Handle) Owned() bool {
	return h.owned
}

// Close releases the underlying instance for owning handles. For non-owning
// handles it does nothing and always returns nil; the native instance stays
// alive and valid. Closing twice is safe either way.
func (h *Handle) Close() error {
	if !h.owned || h.closed {
		return nil
	}
	h.closed = true

	if closer, ok := h.native.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// String returns a short description of the handle.
func (h *Handle) String() string {
	ownership := "owned"
	if !h.owned {
		ownership = "non-owning"
	}
	return fmt.Sprintf("Handle(%s, %s, %s)", h.typeName, h.id, ownership)
}
