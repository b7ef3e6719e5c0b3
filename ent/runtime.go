// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sundialhq/maestro/ent/chatmessage"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/ent/schema"
	"github.com/sundialhq/maestro/ent/session"
	"github.com/sundialhq/maestro/ent/sessionnote"
	"github.com/sundialhq/maestro/ent/uploadedfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	emaildraftFields := schema.EmailDraft{}.Fields()
	_ = emaildraftFields
	// emaildraftDescTone is the schema descriptor for tone field.
	emaildraftDescTone := emaildraftFields[8].Descriptor()
	// emaildraft.DefaultTone holds the default value on creation for the tone field.
	emaildraft.DefaultTone = emaildraftDescTone.Default.(string)
	// emaildraftDescPriority is the schema descriptor for priority field.
	emaildraftDescPriority := emaildraftFields[9].Descriptor()
	// emaildraft.DefaultPriority holds the default value on creation for the priority field.
	emaildraft.DefaultPriority = emaildraftDescPriority.Default.(string)
	// emaildraftDescCreatedAt is the schema descriptor for created_at field.
	emaildraftDescCreatedAt := emaildraftFields[11].Descriptor()
	// emaildraft.DefaultCreatedAt holds the default value on creation for the created_at field.
	emaildraft.DefaultCreatedAt = emaildraftDescCreatedAt.Default.(func() time.Time)
	// emaildraftDescUpdatedAt is the schema descriptor for updated_at field.
	emaildraftDescUpdatedAt := emaildraftFields[12].Descriptor()
	// emaildraft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emaildraft.DefaultUpdatedAt = emaildraftDescUpdatedAt.Default.(func() time.Time)
	// emaildraft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emaildraft.UpdateDefaultUpdatedAt = emaildraftDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emaildraftDescRetryCount is the schema descriptor for retry_count field.
	emaildraftDescRetryCount := emaildraftFields[22].Descriptor()
	// emaildraft.DefaultRetryCount holds the default value on creation for the retry_count field.
	emaildraft.DefaultRetryCount = emaildraftDescRetryCount.Default.(int)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[2].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescLastActiveAt is the schema descriptor for last_active_at field.
	sessionDescLastActiveAt := sessionFields[3].Descriptor()
	// session.DefaultLastActiveAt holds the default value on creation for the last_active_at field.
	session.DefaultLastActiveAt = sessionDescLastActiveAt.Default.(func() time.Time)
	// session.UpdateDefaultLastActiveAt holds the default value on update for the last_active_at field.
	session.UpdateDefaultLastActiveAt = sessionDescLastActiveAt.UpdateDefault.(func() time.Time)
	sessionnoteFields := schema.SessionNote{}.Fields()
	_ = sessionnoteFields
	// sessionnoteDescCreatedAt is the schema descriptor for created_at field.
	sessionnoteDescCreatedAt := sessionnoteFields[6].Descriptor()
	// sessionnote.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionnote.DefaultCreatedAt = sessionnoteDescCreatedAt.Default.(func() time.Time)
	// sessionnoteDescUpdatedAt is the schema descriptor for updated_at field.
	sessionnoteDescUpdatedAt := sessionnoteFields[7].Descriptor()
	// sessionnote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionnote.DefaultUpdatedAt = sessionnoteDescUpdatedAt.Default.(func() time.Time)
	// sessionnote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionnote.UpdateDefaultUpdatedAt = sessionnoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	uploadedfileFields := schema.UploadedFile{}.Fields()
	_ = uploadedfileFields
	// uploadedfileDescUploadedAt is the schema descriptor for uploaded_at field.
	uploadedfileDescUploadedAt := uploadedfileFields[6].Descriptor()
	// uploadedfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	uploadedfile.DefaultUploadedAt = uploadedfileDescUploadedAt.Default.(func() time.Time)
}
