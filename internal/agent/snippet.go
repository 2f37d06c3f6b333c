package agent

import "strings"

// snippet returns at most n leading bytes of content decoded as UTF-8,
// dropping undecodable sequences instead of failing. Raw PDF bytes are
// mostly binary; the classifier only needs whatever text survives.
func snippet(content []byte, n int) string {
	if len(content) > n {
		content = content[:n]
	}
	return strings.ToValidUTF8(string(content), "")
}
