package app

// User-facing strings.
const (
	msgConnectionError = "Connection error"

	msgLoginSuccess           = "Login successful!"
	msgLoginFailed            = "Login failed"
	msgPlayerLoginUnavailable = "Player login is not available in this version"
	msgRegisterSuccess        = "Account created! Logging in..."
	msgRegisterFailed         = "Failed to create account"
	msgPasswordMismatch       = "Passwords do not match"
	msgLogoutSuccess          = "Logged out successfully!"
	msgNotLoggedIn            = "Please log in first"

	msgLoadPlayersFailed = "Failed to load players"
	msgAddPlayerSuccess  = "Player added successfully!"
	msgAddPlayerFailed   = "Failed to add player"
	msgPlayerNotFound    = "Player not found"
	msgEditUnavailable   = "Player editing is not available yet"
	msgAssignUnavailable = "Training assignment is not available yet"

	msgLoadTrainingsFailed = "Failed to load trainings"

	msgNoPlayerSelected  = "No player selected"
	msgTipsLoading       = "Generating personalized tips..."
	msgTipsUnavailable   = "Could not get tips"
	msgNoTips            = "No tips available."
	msgTipsConnectionErr = "Could not reach the AI service."
)
