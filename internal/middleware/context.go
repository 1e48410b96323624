package middleware

// ContextKeyRequestID stores the request identifier in the echo context.
const ContextKeyRequestID = "request_id"
