package constants

const (
	USER_TYPE_ADMIN uint = 0
	USER_TYPE_USER  uint = 1
)

const (
	BOOKING_ACTIVE    = "ACTIVE"
	BOOKING_CANCELLED = "CANCELLED"
	BOOKING_COMPLETED = "COMPLETED"
)

const (
	INTERACTION_LIKE    = "LIKE"
	INTERACTION_DISLIKE = "DISLIKE"
)

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Id must be a number"
	NOT_ADMIN                  = "Admin permission required"
	MISSING_TOKEN              = "Missing token"
	INVALID_TOKEN              = "Invalid token"

	USER_NOT_FOUND           = "User not found"
	EMAIL_ALREADY_REGISTERED = "Email already registered"
	INVALID_LOGIN            = "Invalid email or password"
	INVALID_OWNER_ID         = "Invalid owner_id"
	INVALID_USER_ID          = "Invalid user_id"

	BOARD_NOT_FOUND               = "Board not found"
	INVALID_OWNER_OR_BOARD        = "Invalid owner_id or board_id"
	INVALID_USER_OR_DISCUSSION    = "Invalid user_id or discussion_id"
	DONATION_NOT_FOUND            = "Donation not found"
	HOTEL_NOT_FOUND               = "Hotel not found"
	ROOM_NOT_FOUND                = "Room not found"
	EVENT_NOT_FOUND               = "Event not found"
	BOOKING_NOT_FOUND             = "Booking not found"
	NOT_ENOUGH_AVAILABILITY       = "Not enough availability"
	BOOKING_ALREADY_CANCELLED     = "Booking is not active"
	CERTIFICATE_RENDER_FAILED     = "Cannot render certificate"
	CLOUDINARY_NOT_CONFIGURED     = "Media upload is not configured"
	WEBSOCKET_UPGRADE_REQUIRED    = "Websocket upgrade required"
	INVALID_AVAILABILITY_RESOURCE = "Unknown resource, expected room or event"
	INVALID_STAY                  = "check_out must be after check_in"
	NOT_BOOKING_OWNER             = "Booking belongs to another user"
	ACTING_FOR_OTHER_USER         = "Cannot act on behalf of another user"
)
