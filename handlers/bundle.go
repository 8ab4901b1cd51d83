package handlers

import (
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	userRepo "github.com/Codekiller51/brandconnect-server/database/repository/user"
)

// HandlerBundle groups the handlers and the repositories the auth middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo     userRepo.UserRepository
	CreativeRepo creativeRepo.CreativeRepository

	User         *UserHandler
	Creative     *CreativeHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Slots        *SlotsHandler
	Review       *ReviewHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}
