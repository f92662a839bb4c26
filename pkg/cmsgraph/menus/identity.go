package menus

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/kras-trans/cmsgraph/pkg/cmsgraph/models"
)

// NodeID derives a stable node identifier from language and label.
func NodeID(lang, label string) string {
	key := "cmsgraph:menu_item:" + strings.ToLower(lang) + ":" + strings.TrimSpace(label)
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		uid = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid.String()
}

// Fingerprint hashes the canonical JSON form of a menu tree. Equal trees
// give equal fingerprints; the generation time is not an input.
func Fingerprint(items []models.MenuNode) string {
	if items == nil {
		items = []models.MenuNode{}
	}
	// MenuNode holds only strings, ints and slices of itself.
	data, _ := json.Marshal(items)
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}
