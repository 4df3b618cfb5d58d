// Package lib groups modules that do not fit strictly into other layers.
//
// It contains background job processing (Redis/Asynq) and the email
// client integration (Resend) used to welcome newly registered members.
package lib
