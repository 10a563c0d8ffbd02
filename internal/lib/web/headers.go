// Package web contains HTTP header utilities shared by handlers:
// entity alert headers and pagination headers.
package web

import (
	"fmt"
	"net/http"
)

// appName prefixes the alert headers so clients can tell which service
// emitted them.
const appName = "carapi"

// setAlert writes the entity alert header pair: a dotted message key
// clients can map to a display string, and the entity identifier it
// concerns.
func setAlert(h http.Header, message, param string) {
	h.Set(fmt.Sprintf("X-%s-alert", appName), message)
	h.Set(fmt.Sprintf("X-%s-params", appName), param)
}

// SetEntityCreationAlert marks a response as having created an entity.
func SetEntityCreationAlert(h http.Header, entityName, param string) {
	setAlert(h, fmt.Sprintf("%s.%s.created", appName, entityName), param)
}

// SetEntityUpdateAlert marks a response as having updated an entity.
func SetEntityUpdateAlert(h http.Header, entityName, param string) {
	setAlert(h, fmt.Sprintf("%s.%s.updated", appName, entityName), param)
}

// SetEntityDeletionAlert marks a response as having deleted an entity.
func SetEntityDeletionAlert(h http.Header, entityName, param string) {
	setAlert(h, fmt.Sprintf("%s.%s.deleted", appName, entityName), param)
}
