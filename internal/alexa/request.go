package alexa

// ValidateRequest checks the client and response type of a linking request.
// Missing values are reported before mismatches, and the client is checked
// before the response type.
func ValidateRequest(clientID, responseType, expectedClientID string) (ErrorCode, bool) {
	if clientID == "" || responseType == "" {
		return ErrorInvalidRequest, false
	}

	if clientID != expectedClientID {
		return ErrorUnauthorizedClient, false
	}

	if responseType != ResponseTypeToken {
		return ErrorUnsupportedResponseType, false
	}

	return "", true
}
