// Package videoid extracts canonical video identifiers from pasted URLs.
//
// A canonical identifier is the 11-character token (letters, digits, '-' and
// '_') that names a video in the platform's addressing scheme. Extraction is a
// pure function of its input: it never trims, never changes case, and reports
// "no identifier" through its boolean result rather than an error.
//
// The recognised shapes are watch links carrying a v= query parameter, the
// youtu.be short-link host, and the /v/, /e/ and /embed/ path forms. Any
// youtube.com path of the form /<segment>/<anything>/<id> is accepted as well;
// that permissiveness is deliberate and kept for compatibility with existing
// catalog data.
package videoid
