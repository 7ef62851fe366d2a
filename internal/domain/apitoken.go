package domain

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	models "sciodb/api/gen/go/sciodb/v1/models"
)

// tokenCharset is the alphabet API token secrets are drawn from.
const tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789)(*&^%$#@!~"

// tokenLength is the number of characters in an API token secret.
const tokenLength = 30

// APIToken is a project-scoped machine credential. It authenticates as the
// user who minted it but is limited to a single project and the rights it
// was created with.
type APIToken struct {
	// ID is the unique identifier for the token.
	ID string `bson:"id" json:"id"`

	// Token is the secret presented by clients.
	Token string `bson:"token" json:"token"`

	// UserID is the user the token acts as.
	UserID string `bson:"user_id" json:"user_id"`

	// Rights are the rights the token holds on the project.
	Rights []Right `bson:"rights" json:"rights"`

	// ProjectID is the single project the token is valid for.
	ProjectID string `bson:"project_id" json:"project_id"`
}

// CollectionName returns the MongoDB collection the entity is stored in.
func (APIToken) CollectionName() string {
	return "APIToken"
}

// ParentField returns the document field referencing the parent entity.
func (APIToken) ParentField() string {
	return "project_id"
}

// NewAPIToken mints a token for the given user and project with read and
// write rights.
func NewAPIToken(userID, projectID string) (*APIToken, error) {
	secret, err := mintTokenSecret()
	if err != nil {
		return nil, err
	}
	return &APIToken{
		ID:        uuid.New().String(),
		Token:     secret,
		UserID:    userID,
		Rights:    []Right{RightRead, RightWrite},
		ProjectID: projectID,
	}, nil
}

// HasRight checks whether the token holds the given right.
func (t *APIToken) HasRight(right Right) bool {
	for _, r := range t.Rights {
		if r == right {
			return true
		}
	}
	return false
}

// ToProto converts the token to its wire representation.
func (t *APIToken) ToProto() *models.ApiToken {
	return &models.ApiToken{
		Id:        t.ID,
		Token:     t.Token,
		Rights:    RightsToProto(t.Rights),
		ProjectId: t.ProjectID,
	}
}

// mintTokenSecret draws tokenLength characters from tokenCharset using
// crypto/rand.
func mintTokenSecret() (string, error) {
	max := big.NewInt(int64(len(tokenCharset)))
	buf := make([]byte, tokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tokenCharset[n.Int64()]
	}
	return string(buf), nil
}
