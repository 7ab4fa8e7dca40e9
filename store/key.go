package store

import "strings"

const (
	NamespaceEconConf      = "econConf"
	NamespaceChains        = "chains"
	NamespaceConfirmations = "confirmations"
	NamespaceStatus        = "status"
)

// Key is a composite store key; the first part is its namespace.
type Key []string

func EconConfKey(chainID string) Key {
	return Key{NamespaceEconConf, chainID}
}

func ChainsKey() Key {
	return Key{NamespaceChains}
}

func ConfirmationsKey(chainID string) Key {
	return Key{NamespaceConfirmations, chainID}
}

func StatusKey(hash string) Key {
	return Key{NamespaceStatus, hash}
}

func (k Key) Namespace() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// String joins the parts with a unit separator so that parts containing
// printable delimiters cannot collide.
func (k Key) String() string {
	return strings.Join(k, "\x1f")
}
