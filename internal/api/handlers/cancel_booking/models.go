package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message string `json:"message"`
}
