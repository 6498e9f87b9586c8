package validate

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
)

const base62 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// tokenChars is base62 plus the separators provider keys embed.
const tokenChars = base62 + "-_"

// LengthBetween returns true if n is within [min,max].
func LengthBetween(s string, min, max int) bool {
	n := len(s)
	return n >= min && n <= max
}

// IsAlphabet returns true if all characters in s are in allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// IsToken reports whether s is made of base62 plus the -_ separators.
func IsToken(s string) bool {
	return IsAlphabet(s, tokenChars)
}

// IsBase64URLNoPad reports whether s is valid base64url (no padding) for JWT segments.
func IsBase64URLNoPad(s string) bool {
	if s == "" {
		return false
	}
	// base64.RawURLEncoding ignores padding; try decode
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}

// IsHex returns true if s is valid hex.
func IsHex(s string) bool {
	if s == "" || len(s)%2 == 1 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsJWTStructure verifies 3 segments base64url-decodable for header and payload.
func IsJWTStructure(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	if !IsBase64URLNoPad(parts[0]) || !IsBase64URLNoPad(parts[1]) {
		return false
	}
	// signature can be empty or non-decodable; we do not require decoding
	return true
}

// IsHTTPURL reports whether s parses as an http(s) URL with a host.
// Service endpoints like Ollama hosts are URLs, not secrets.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// LooksLikeOpenAIKey checks sk- / sk-proj- prefix and reasonable
// alphabet/length. The sk-ant- and sk-or- families belong to other
// providers and are excluded here.
func LooksLikeOpenAIKey(s string) bool {
	if strings.HasPrefix(s, "sk-ant-") || strings.HasPrefix(s, "sk-or-") {
		return false
	}
	if !strings.HasPrefix(s, "sk-") || len(s) < 20 {
		return false
	}
	return IsAlphabet(s[3:], tokenChars)
}

// LooksLikeAnthropicKey checks the sk-ant- prefix.
func LooksLikeAnthropicKey(s string) bool {
	if !strings.HasPrefix(s, "sk-ant-") || len(s) < 15 {
		return false
	}
	return IsAlphabet(s[7:], tokenChars)
}

// LooksLikeGroqKey checks gsk_ + base62 tail.
func LooksLikeGroqKey(s string) bool {
	if !strings.HasPrefix(s, "gsk_") {
		return false
	}
	tail := s[4:]
	if !LengthBetween(tail, 20, 64) {
		return false
	}
	return IsAlphabet(tail, base62)
}

// LooksLikeHuggingFaceToken checks hf_ + base62 tail.
func LooksLikeHuggingFaceToken(s string) bool {
	if !strings.HasPrefix(s, "hf_") {
		return false
	}
	tail := s[3:]
	if !LengthBetween(tail, 16, 64) {
		return false
	}
	return IsAlphabet(tail, base62)
}

// LooksLikeOpenRouterKey checks the sk-or- prefix.
func LooksLikeOpenRouterKey(s string) bool {
	if !strings.HasPrefix(s, "sk-or-") || len(s) < 20 {
		return false
	}
	return IsAlphabet(s[6:], tokenChars)
}

// LooksLikeMistralKey checks for the bare 32-char alphanumeric shape
// Mistral issues. No prefix, so length and alphabet carry the signal.
func LooksLikeMistralKey(s string) bool {
	if len(s) != 32 {
		return false
	}
	return IsAlphabet(s, base62)
}

// LooksLikeCohereKey checks for the bare 40-char token shape.
func LooksLikeCohereKey(s string) bool {
	if len(s) != 40 {
		return false
	}
	return IsAlphabet(s, base62)
}

// HasSecretPrefix reports whether s starts with a vendor key prefix.
// Used by the generic config detector to lift a heuristic hit to Likely.
func HasSecretPrefix(s string) bool {
	for _, p := range []string{"sk-", "gsk_", "hf_", "ak-", "pk-", "key-"} {
		if strings.HasPrefix(s, p) && len(s) > len(p)+8 {
			return true
		}
	}
	return false
}
