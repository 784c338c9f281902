package extract

// ClientResponse is the fixed boundary-layer representation of a
// classified failure.
type ClientResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Respond maps an ErrorKind to its client-facing status and message.
// The mapping is pure and total; an unrecognized kind falls through to
// the UNKNOWN row so nothing opaque ever reaches a client.
func Respond(kind ErrorKind) ClientResponse {
	switch kind {
	case KindScannedNoText:
		return ClientResponse{422, string(kind), "PDF appears to be scanned images; upload a text-based PDF or DOCX"}
	case KindPasswordProtected:
		return ClientResponse{400, string(kind), "Password-protected PDFs are not supported"}
	case KindInvalidOrCorrupt:
		return ClientResponse{400, string(kind), "Invalid or corrupted PDF"}
	case KindTooLarge:
		return ClientResponse{413, string(kind), "File exceeds maximum size"}
	case KindUnsupportedFormat:
		return ClientResponse{400, string(kind), "Unsupported file type"}
	case KindTimedOut, KindDecoderUnavailable:
		return ClientResponse{503, string(kind), "Processing temporarily unavailable; retry or use DOCX"}
	default:
		return ClientResponse{500, string(KindUnknown), "Failed to extract text"}
	}
}
