package domain

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrNotificationNotFound = errors.New("notification not found")
var ErrDuplicateTrackingCode = errors.New("tracking code already exists")
var ErrPersistence = errors.New("persistence failure")
var ErrForbidden = errors.New("access forbidden")

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
