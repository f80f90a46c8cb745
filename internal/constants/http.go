package constants

// ContentTypeHeader is the HTTP Content-Type header name.
const ContentTypeHeader = "Content-Type"

// ContentTypeJSON is the media type used for webhook payloads.
const ContentTypeJSON = "application/json"

// MaxLoggedResponseBytes caps how much of a webhook response body is read for logging.
const MaxLoggedResponseBytes = 4096
