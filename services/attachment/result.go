package attachment

// Reason classifies a failed Result for callers that need to map it (the
// HTTP layer). It is never serialized; clients only see the message.
type Reason string

const (
	ReasonNotAuthorized         Reason = "not_authorized"
	ReasonNotFoundOrDenied      Reason = "not_found_or_denied"
	ReasonUnsupportedEntityType Reason = "unsupported_entity_type"
	ReasonMalformedReference    Reason = "malformed_reference"
	ReasonStorageUnavailable    Reason = "storage_unavailable"
	ReasonStorageError          Reason = "storage_error"
	ReasonRequestFailed         Reason = "request_failed"
)

// Messages surfaced to clients. "Not found" and "wrong tenant" share one
// message on purpose: the response must not reveal whether an attachment id
// exists in another organization.
const (
	msgNotAuthorized      = "Not authorized - no organization found"
	msgNotFoundOrDenied   = "Attachment not found or access denied"
	msgStorageUnavailable = "File service is not configured"
	msgMalformedReference = "Could not process attachment URL"
	msgGrantFailed        = "Could not generate access URL for the file"
	msgRequestFailed      = "Failed to process attachment request"
	msgDeleteFailed       = "Failed to delete attachment"
)

// Result is the uniform outcome envelope every attachment operation returns.
// No error ever propagates past the service as a panic or a Go error; callers
// always get one of these.
type Result struct {
	OK     bool   `json:"ok"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Reason Reason `json:"-"`
}

func success(data any) Result {
	return Result{OK: true, Data: data}
}

func failure(reason Reason, msg string) Result {
	return Result{OK: false, Error: msg, Reason: reason}
}

type CreatedAttachment struct {
	AttachmentID string `json:"attachment_id"`
}

type DeletedAttachment struct {
	DeletedAttachmentID string `json:"deleted_attachment_id"`
}

type AccessGrant struct {
	SignedURL string `json:"signed_url"`
}
