// Package domain contains the server's persistent entities.
package domain

import "time"

// Submission is one contact-form submission. Delivery to an email provider
// happens out of band; the server's job is to validate, persist, and log.
type Submission struct {
	ID        string
	Name      string
	Email     string
	Reason    string
	Message   string
	ClientKey string
	CreatedAt time.Time
}
