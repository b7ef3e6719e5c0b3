// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sundialhq/maestro/ent/chatmessage"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/ent/predicate"
	"github.com/sundialhq/maestro/ent/session"
	"github.com/sundialhq/maestro/ent/sessionnote"
	"github.com/sundialhq/maestro/ent/uploadedfile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage  = "ChatMessage"
	TypeEmailDraft   = "EmailDraft"
	TypeSession      = "Session"
	TypeSessionNote  = "SessionNote"
	TypeUploadedFile = "UploadedFile"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	sender         *chatmessage.Sender
	agent_type     *string
	body           *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*ChatMessage, error)
	predicates     []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSender sets the "sender" field.
func (m *ChatMessageMutation) SetSender(c chatmessage.Sender) {
	m.sender = &c
}

// Sender returns the value of the "sender" field in the mutation.
func (m *ChatMessageMutation) Sender() (r chatmessage.Sender, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSender(ctx context.Context) (v chatmessage.Sender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *ChatMessageMutation) ResetSender() {
	m.sender = nil
}

// SetAgentType sets the "agent_type" field.
func (m *ChatMessageMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *ChatMessageMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAgentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ClearAgentType clears the value of the "agent_type" field.
func (m *ChatMessageMutation) ClearAgentType() {
	m.agent_type = nil
	m.clearedFields[chatmessage.FieldAgentType] = struct{}{}
}

// AgentTypeCleared returns if the "agent_type" field was cleared in this mutation.
func (m *ChatMessageMutation) AgentTypeCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAgentType]
	return ok
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *ChatMessageMutation) ResetAgentType() {
	m.agent_type = nil
	delete(m.clearedFields, chatmessage.FieldAgentType)
}

// SetBody sets the "body" field.
func (m *ChatMessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ChatMessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ChatMessageMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ChatMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chatmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ChatMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChatMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.sender != nil {
		fields = append(fields, chatmessage.FieldSender)
	}
	if m.agent_type != nil {
		fields = append(fields, chatmessage.FieldAgentType)
	}
	if m.body != nil {
		fields = append(fields, chatmessage.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldSender:
		return m.Sender()
	case chatmessage.FieldAgentType:
		return m.AgentType()
	case chatmessage.FieldBody:
		return m.Body()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldSender:
		return m.OldSender(ctx)
	case chatmessage.FieldAgentType:
		return m.OldAgentType(ctx)
	case chatmessage.FieldBody:
		return m.OldBody(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldSender:
		v, ok := value.(chatmessage.Sender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case chatmessage.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case chatmessage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldAgentType) {
		fields = append(fields, chatmessage.FieldAgentType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldAgentType:
		m.ClearAgentType()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldSender:
		m.ResetSender()
		return nil
	case chatmessage.FieldAgentType:
		m.ResetAgentType()
		return nil
	case chatmessage.FieldBody:
		m.ResetBody()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, chatmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, chatmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// EmailDraftMutation represents an operation that mutates the EmailDraft nodes in the graph.
type EmailDraftMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	to                   *string
	cc                   *[]string
	appendcc             []string
	bcc                  *[]string
	appendbcc            []string
	subject              *string
	body                 *string
	tone                 *string
	priority             *string
	status               *emaildraft.Status
	created_at           *time.Time
	updated_at           *time.Time
	approved_at          *time.Time
	sent_at              *time.Time
	expires_at           *time.Time
	conversation_context *string
	ai_reasoning         *string
	safety_checks        *map[string]interface{}
	approval_feedback    *string
	provider_message_id  *string
	provider_thread_id   *string
	retry_count          *int
	addretry_count       *int
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	done                 bool
	oldValue             func(context.Context) (*EmailDraft, error)
	predicates           []predicate.EmailDraft
}

var _ ent.Mutation = (*EmailDraftMutation)(nil)

// emaildraftOption allows management of the mutation configuration using functional options.
type emaildraftOption func(*EmailDraftMutation)

// newEmailDraftMutation creates new mutation for the EmailDraft entity.
func newEmailDraftMutation(c config, op Op, opts ...emaildraftOption) *EmailDraftMutation {
	m := &EmailDraftMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailDraft,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailDraftID sets the ID field of the mutation.
func withEmailDraftID(id string) emaildraftOption {
	return func(m *EmailDraftMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailDraft
		)
		m.oldValue = func(ctx context.Context) (*EmailDraft, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailDraft.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailDraft sets the old EmailDraft of the mutation.
func withEmailDraft(node *EmailDraft) emaildraftOption {
	return func(m *EmailDraftMutation) {
		m.oldValue = func(context.Context) (*EmailDraft, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailDraftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailDraftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailDraft entities.
func (m *EmailDraftMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailDraftMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailDraftMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailDraft.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EmailDraftMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EmailDraftMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EmailDraftMutation) ResetSessionID() {
	m.session = nil
}

// SetUserID sets the "user_id" field.
func (m *EmailDraftMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EmailDraftMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *EmailDraftMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[emaildraft.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *EmailDraftMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EmailDraftMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, emaildraft.FieldUserID)
}

// SetTo sets the "to" field.
func (m *EmailDraftMutation) SetTo(s string) {
	m.to = &s
}

// To returns the value of the "to" field in the mutation.
func (m *EmailDraftMutation) To() (r string, exists bool) {
	v := m.to
	if v == nil {
		return
	}
	return *v, true
}

// OldTo returns the old "to" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTo: %w", err)
	}
	return oldValue.To, nil
}

// ResetTo resets all changes to the "to" field.
func (m *EmailDraftMutation) ResetTo() {
	m.to = nil
}

// SetCc sets the "cc" field.
func (m *EmailDraftMutation) SetCc(s []string) {
	m.cc = &s
	m.appendcc = nil
}

// Cc returns the value of the "cc" field in the mutation.
func (m *EmailDraftMutation) Cc() (r []string, exists bool) {
	v := m.cc
	if v == nil {
		return
	}
	return *v, true
}

// OldCc returns the old "cc" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldCc(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCc: %w", err)
	}
	return oldValue.Cc, nil
}

// AppendCc adds s to the "cc" field.
func (m *EmailDraftMutation) AppendCc(s []string) {
	m.appendcc = append(m.appendcc, s...)
}

// AppendedCc returns the list of values that were appended to the "cc" field in this mutation.
func (m *EmailDraftMutation) AppendedCc() ([]string, bool) {
	if len(m.appendcc) == 0 {
		return nil, false
	}
	return m.appendcc, true
}

// ClearCc clears the value of the "cc" field.
func (m *EmailDraftMutation) ClearCc() {
	m.cc = nil
	m.appendcc = nil
	m.clearedFields[emaildraft.FieldCc] = struct{}{}
}

// CcCleared returns if the "cc" field was cleared in this mutation.
func (m *EmailDraftMutation) CcCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldCc]
	return ok
}

// ResetCc resets all changes to the "cc" field.
func (m *EmailDraftMutation) ResetCc() {
	m.cc = nil
	m.appendcc = nil
	delete(m.clearedFields, emaildraft.FieldCc)
}

// SetBcc sets the "bcc" field.
func (m *EmailDraftMutation) SetBcc(s []string) {
	m.bcc = &s
	m.appendbcc = nil
}

// Bcc returns the value of the "bcc" field in the mutation.
func (m *EmailDraftMutation) Bcc() (r []string, exists bool) {
	v := m.bcc
	if v == nil {
		return
	}
	return *v, true
}

// OldBcc returns the old "bcc" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldBcc(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBcc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBcc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBcc: %w", err)
	}
	return oldValue.Bcc, nil
}

// AppendBcc adds s to the "bcc" field.
func (m *EmailDraftMutation) AppendBcc(s []string) {
	m.appendbcc = append(m.appendbcc, s...)
}

// AppendedBcc returns the list of values that were appended to the "bcc" field in this mutation.
func (m *EmailDraftMutation) AppendedBcc() ([]string, bool) {
	if len(m.appendbcc) == 0 {
		return nil, false
	}
	return m.appendbcc, true
}

// ClearBcc clears the value of the "bcc" field.
func (m *EmailDraftMutation) ClearBcc() {
	m.bcc = nil
	m.appendbcc = nil
	m.clearedFields[emaildraft.FieldBcc] = struct{}{}
}

// BccCleared returns if the "bcc" field was cleared in this mutation.
func (m *EmailDraftMutation) BccCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldBcc]
	return ok
}

// ResetBcc resets all changes to the "bcc" field.
func (m *EmailDraftMutation) ResetBcc() {
	m.bcc = nil
	m.appendbcc = nil
	delete(m.clearedFields, emaildraft.FieldBcc)
}

// SetSubject sets the "subject" field.
func (m *EmailDraftMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailDraftMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailDraftMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *EmailDraftMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *EmailDraftMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *EmailDraftMutation) ResetBody() {
	m.body = nil
}

// SetTone sets the "tone" field.
func (m *EmailDraftMutation) SetTone(s string) {
	m.tone = &s
}

// Tone returns the value of the "tone" field in the mutation.
func (m *EmailDraftMutation) Tone() (r string, exists bool) {
	v := m.tone
	if v == nil {
		return
	}
	return *v, true
}

// OldTone returns the old "tone" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldTone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTone: %w", err)
	}
	return oldValue.Tone, nil
}

// ResetTone resets all changes to the "tone" field.
func (m *EmailDraftMutation) ResetTone() {
	m.tone = nil
}

// SetPriority sets the "priority" field.
func (m *EmailDraftMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *EmailDraftMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *EmailDraftMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *EmailDraftMutation) SetStatus(e emaildraft.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EmailDraftMutation) Status() (r emaildraft.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldStatus(ctx context.Context) (v emaildraft.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EmailDraftMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailDraftMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailDraftMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailDraftMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmailDraftMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmailDraftMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmailDraftMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetApprovedAt sets the "approved_at" field.
func (m *EmailDraftMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *EmailDraftMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *EmailDraftMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[emaildraft.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *EmailDraftMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *EmailDraftMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, emaildraft.FieldApprovedAt)
}

// SetSentAt sets the "sent_at" field.
func (m *EmailDraftMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *EmailDraftMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *EmailDraftMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[emaildraft.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *EmailDraftMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *EmailDraftMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, emaildraft.FieldSentAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *EmailDraftMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *EmailDraftMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *EmailDraftMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[emaildraft.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *EmailDraftMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *EmailDraftMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, emaildraft.FieldExpiresAt)
}

// SetConversationContext sets the "conversation_context" field.
func (m *EmailDraftMutation) SetConversationContext(s string) {
	m.conversation_context = &s
}

// ConversationContext returns the value of the "conversation_context" field in the mutation.
func (m *EmailDraftMutation) ConversationContext() (r string, exists bool) {
	v := m.conversation_context
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationContext returns the old "conversation_context" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldConversationContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationContext: %w", err)
	}
	return oldValue.ConversationContext, nil
}

// ClearConversationContext clears the value of the "conversation_context" field.
func (m *EmailDraftMutation) ClearConversationContext() {
	m.conversation_context = nil
	m.clearedFields[emaildraft.FieldConversationContext] = struct{}{}
}

// ConversationContextCleared returns if the "conversation_context" field was cleared in this mutation.
func (m *EmailDraftMutation) ConversationContextCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldConversationContext]
	return ok
}

// ResetConversationContext resets all changes to the "conversation_context" field.
func (m *EmailDraftMutation) ResetConversationContext() {
	m.conversation_context = nil
	delete(m.clearedFields, emaildraft.FieldConversationContext)
}

// SetAiReasoning sets the "ai_reasoning" field.
func (m *EmailDraftMutation) SetAiReasoning(s string) {
	m.ai_reasoning = &s
}

// AiReasoning returns the value of the "ai_reasoning" field in the mutation.
func (m *EmailDraftMutation) AiReasoning() (r string, exists bool) {
	v := m.ai_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldAiReasoning returns the old "ai_reasoning" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldAiReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiReasoning: %w", err)
	}
	return oldValue.AiReasoning, nil
}

// ClearAiReasoning clears the value of the "ai_reasoning" field.
func (m *EmailDraftMutation) ClearAiReasoning() {
	m.ai_reasoning = nil
	m.clearedFields[emaildraft.FieldAiReasoning] = struct{}{}
}

// AiReasoningCleared returns if the "ai_reasoning" field was cleared in this mutation.
func (m *EmailDraftMutation) AiReasoningCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldAiReasoning]
	return ok
}

// ResetAiReasoning resets all changes to the "ai_reasoning" field.
func (m *EmailDraftMutation) ResetAiReasoning() {
	m.ai_reasoning = nil
	delete(m.clearedFields, emaildraft.FieldAiReasoning)
}

// SetSafetyChecks sets the "safety_checks" field.
func (m *EmailDraftMutation) SetSafetyChecks(value map[string]interface{}) {
	m.safety_checks = &value
}

// SafetyChecks returns the value of the "safety_checks" field in the mutation.
func (m *EmailDraftMutation) SafetyChecks() (r map[string]interface{}, exists bool) {
	v := m.safety_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldSafetyChecks returns the old "safety_checks" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldSafetyChecks(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSafetyChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSafetyChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSafetyChecks: %w", err)
	}
	return oldValue.SafetyChecks, nil
}

// ClearSafetyChecks clears the value of the "safety_checks" field.
func (m *EmailDraftMutation) ClearSafetyChecks() {
	m.safety_checks = nil
	m.clearedFields[emaildraft.FieldSafetyChecks] = struct{}{}
}

// SafetyChecksCleared returns if the "safety_checks" field was cleared in this mutation.
func (m *EmailDraftMutation) SafetyChecksCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldSafetyChecks]
	return ok
}

// ResetSafetyChecks resets all changes to the "safety_checks" field.
func (m *EmailDraftMutation) ResetSafetyChecks() {
	m.safety_checks = nil
	delete(m.clearedFields, emaildraft.FieldSafetyChecks)
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (m *EmailDraftMutation) SetApprovalFeedback(s string) {
	m.approval_feedback = &s
}

// ApprovalFeedback returns the value of the "approval_feedback" field in the mutation.
func (m *EmailDraftMutation) ApprovalFeedback() (r string, exists bool) {
	v := m.approval_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalFeedback returns the old "approval_feedback" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldApprovalFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalFeedback: %w", err)
	}
	return oldValue.ApprovalFeedback, nil
}

// ClearApprovalFeedback clears the value of the "approval_feedback" field.
func (m *EmailDraftMutation) ClearApprovalFeedback() {
	m.approval_feedback = nil
	m.clearedFields[emaildraft.FieldApprovalFeedback] = struct{}{}
}

// ApprovalFeedbackCleared returns if the "approval_feedback" field was cleared in this mutation.
func (m *EmailDraftMutation) ApprovalFeedbackCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldApprovalFeedback]
	return ok
}

// ResetApprovalFeedback resets all changes to the "approval_feedback" field.
func (m *EmailDraftMutation) ResetApprovalFeedback() {
	m.approval_feedback = nil
	delete(m.clearedFields, emaildraft.FieldApprovalFeedback)
}

// SetProviderMessageID sets the "provider_message_id" field.
func (m *EmailDraftMutation) SetProviderMessageID(s string) {
	m.provider_message_id = &s
}

// ProviderMessageID returns the value of the "provider_message_id" field in the mutation.
func (m *EmailDraftMutation) ProviderMessageID() (r string, exists bool) {
	v := m.provider_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMessageID returns the old "provider_message_id" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldProviderMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMessageID: %w", err)
	}
	return oldValue.ProviderMessageID, nil
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (m *EmailDraftMutation) ClearProviderMessageID() {
	m.provider_message_id = nil
	m.clearedFields[emaildraft.FieldProviderMessageID] = struct{}{}
}

// ProviderMessageIDCleared returns if the "provider_message_id" field was cleared in this mutation.
func (m *EmailDraftMutation) ProviderMessageIDCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldProviderMessageID]
	return ok
}

// ResetProviderMessageID resets all changes to the "provider_message_id" field.
func (m *EmailDraftMutation) ResetProviderMessageID() {
	m.provider_message_id = nil
	delete(m.clearedFields, emaildraft.FieldProviderMessageID)
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (m *EmailDraftMutation) SetProviderThreadID(s string) {
	m.provider_thread_id = &s
}

// ProviderThreadID returns the value of the "provider_thread_id" field in the mutation.
func (m *EmailDraftMutation) ProviderThreadID() (r string, exists bool) {
	v := m.provider_thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderThreadID returns the old "provider_thread_id" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldProviderThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderThreadID: %w", err)
	}
	return oldValue.ProviderThreadID, nil
}

// ClearProviderThreadID clears the value of the "provider_thread_id" field.
func (m *EmailDraftMutation) ClearProviderThreadID() {
	m.provider_thread_id = nil
	m.clearedFields[emaildraft.FieldProviderThreadID] = struct{}{}
}

// ProviderThreadIDCleared returns if the "provider_thread_id" field was cleared in this mutation.
func (m *EmailDraftMutation) ProviderThreadIDCleared() bool {
	_, ok := m.clearedFields[emaildraft.FieldProviderThreadID]
	return ok
}

// ResetProviderThreadID resets all changes to the "provider_thread_id" field.
func (m *EmailDraftMutation) ResetProviderThreadID() {
	m.provider_thread_id = nil
	delete(m.clearedFields, emaildraft.FieldProviderThreadID)
}

// SetRetryCount sets the "retry_count" field.
func (m *EmailDraftMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *EmailDraftMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the EmailDraft entity.
// If the EmailDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailDraftMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *EmailDraftMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *EmailDraftMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *EmailDraftMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *EmailDraftMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[emaildraft.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *EmailDraftMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EmailDraftMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EmailDraftMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EmailDraftMutation builder.
func (m *EmailDraftMutation) Where(ps ...predicate.EmailDraft) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailDraftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailDraftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailDraft, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailDraftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailDraftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailDraft).
func (m *EmailDraftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailDraftMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.session != nil {
		fields = append(fields, emaildraft.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, emaildraft.FieldUserID)
	}
	if m.to != nil {
		fields = append(fields, emaildraft.FieldTo)
	}
	if m.cc != nil {
		fields = append(fields, emaildraft.FieldCc)
	}
	if m.bcc != nil {
		fields = append(fields, emaildraft.FieldBcc)
	}
	if m.subject != nil {
		fields = append(fields, emaildraft.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, emaildraft.FieldBody)
	}
	if m.tone != nil {
		fields = append(fields, emaildraft.FieldTone)
	}
	if m.priority != nil {
		fields = append(fields, emaildraft.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, emaildraft.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, emaildraft.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emaildraft.FieldUpdatedAt)
	}
	if m.approved_at != nil {
		fields = append(fields, emaildraft.FieldApprovedAt)
	}
	if m.sent_at != nil {
		fields = append(fields, emaildraft.FieldSentAt)
	}
	if m.expires_at != nil {
		fields = append(fields, emaildraft.FieldExpiresAt)
	}
	if m.conversation_context != nil {
		fields = append(fields, emaildraft.FieldConversationContext)
	}
	if m.ai_reasoning != nil {
		fields = append(fields, emaildraft.FieldAiReasoning)
	}
	if m.safety_checks != nil {
		fields = append(fields, emaildraft.FieldSafetyChecks)
	}
	if m.approval_feedback != nil {
		fields = append(fields, emaildraft.FieldApprovalFeedback)
	}
	if m.provider_message_id != nil {
		fields = append(fields, emaildraft.FieldProviderMessageID)
	}
	if m.provider_thread_id != nil {
		fields = append(fields, emaildraft.FieldProviderThreadID)
	}
	if m.retry_count != nil {
		fields = append(fields, emaildraft.FieldRetryCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailDraftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emaildraft.FieldSessionID:
		return m.SessionID()
	case emaildraft.FieldUserID:
		return m.UserID()
	case emaildraft.FieldTo:
		return m.To()
	case emaildraft.FieldCc:
		return m.Cc()
	case emaildraft.FieldBcc:
		return m.Bcc()
	case emaildraft.FieldSubject:
		return m.Subject()
	case emaildraft.FieldBody:
		return m.Body()
	case emaildraft.FieldTone:
		return m.Tone()
	case emaildraft.FieldPriority:
		return m.Priority()
	case emaildraft.FieldStatus:
		return m.Status()
	case emaildraft.FieldCreatedAt:
		return m.CreatedAt()
	case emaildraft.FieldUpdatedAt:
		return m.UpdatedAt()
	case emaildraft.FieldApprovedAt:
		return m.ApprovedAt()
	case emaildraft.FieldSentAt:
		return m.SentAt()
	case emaildraft.FieldExpiresAt:
		return m.ExpiresAt()
	case emaildraft.FieldConversationContext:
		return m.ConversationContext()
	case emaildraft.FieldAiReasoning:
		return m.AiReasoning()
	case emaildraft.FieldSafetyChecks:
		return m.SafetyChecks()
	case emaildraft.FieldApprovalFeedback:
		return m.ApprovalFeedback()
	case emaildraft.FieldProviderMessageID:
		return m.ProviderMessageID()
	case emaildraft.FieldProviderThreadID:
		return m.ProviderThreadID()
	case emaildraft.FieldRetryCount:
		return m.RetryCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailDraftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emaildraft.FieldSessionID:
		return m.OldSessionID(ctx)
	case emaildraft.FieldUserID:
		return m.OldUserID(ctx)
	case emaildraft.FieldTo:
		return m.OldTo(ctx)
	case emaildraft.FieldCc:
		return m.OldCc(ctx)
	case emaildraft.FieldBcc:
		return m.OldBcc(ctx)
	case emaildraft.FieldSubject:
		return m.OldSubject(ctx)
	case emaildraft.FieldBody:
		return m.OldBody(ctx)
	case emaildraft.FieldTone:
		return m.OldTone(ctx)
	case emaildraft.FieldPriority:
		return m.OldPriority(ctx)
	case emaildraft.FieldStatus:
		return m.OldStatus(ctx)
	case emaildraft.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emaildraft.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case emaildraft.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case emaildraft.FieldSentAt:
		return m.OldSentAt(ctx)
	case emaildraft.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case emaildraft.FieldConversationContext:
		return m.OldConversationContext(ctx)
	case emaildraft.FieldAiReasoning:
		return m.OldAiReasoning(ctx)
	case emaildraft.FieldSafetyChecks:
		return m.OldSafetyChecks(ctx)
	case emaildraft.FieldApprovalFeedback:
		return m.OldApprovalFeedback(ctx)
	case emaildraft.FieldProviderMessageID:
		return m.OldProviderMessageID(ctx)
	case emaildraft.FieldProviderThreadID:
		return m.OldProviderThreadID(ctx)
	case emaildraft.FieldRetryCount:
		return m.OldRetryCount(ctx)
	}
	return nil, fmt.Errorf("unknown EmailDraft field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailDraftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emaildraft.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case emaildraft.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case emaildraft.FieldTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTo(v)
		return nil
	case emaildraft.FieldCc:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCc(v)
		return nil
	case emaildraft.FieldBcc:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBcc(v)
		return nil
	case emaildraft.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emaildraft.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case emaildraft.FieldTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTone(v)
		return nil
	case emaildraft.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case emaildraft.FieldStatus:
		v, ok := value.(emaildraft.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case emaildraft.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emaildraft.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case emaildraft.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case emaildraft.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case emaildraft.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case emaildraft.FieldConversationContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationContext(v)
		return nil
	case emaildraft.FieldAiReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiReasoning(v)
		return nil
	case emaildraft.FieldSafetyChecks:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSafetyChecks(v)
		return nil
	case emaildraft.FieldApprovalFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalFeedback(v)
		return nil
	case emaildraft.FieldProviderMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMessageID(v)
		return nil
	case emaildraft.FieldProviderThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderThreadID(v)
		return nil
	case emaildraft.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown EmailDraft field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailDraftMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, emaildraft.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailDraftMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case emaildraft.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailDraftMutation) AddField(name string, value ent.Value) error {
	switch name {
	case emaildraft.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown EmailDraft numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailDraftMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emaildraft.FieldUserID) {
		fields = append(fields, emaildraft.FieldUserID)
	}
	if m.FieldCleared(emaildraft.FieldCc) {
		fields = append(fields, emaildraft.FieldCc)
	}
	if m.FieldCleared(emaildraft.FieldBcc) {
		fields = append(fields, emaildraft.FieldBcc)
	}
	if m.FieldCleared(emaildraft.FieldApprovedAt) {
		fields = append(fields, emaildraft.FieldApprovedAt)
	}
	if m.FieldCleared(emaildraft.FieldSentAt) {
		fields = append(fields, emaildraft.FieldSentAt)
	}
	if m.FieldCleared(emaildraft.FieldExpiresAt) {
		fields = append(fields, emaildraft.FieldExpiresAt)
	}
	if m.FieldCleared(emaildraft.FieldConversationContext) {
		fields = append(fields, emaildraft.FieldConversationContext)
	}
	if m.FieldCleared(emaildraft.FieldAiReasoning) {
		fields = append(fields, emaildraft.FieldAiReasoning)
	}
	if m.FieldCleared(emaildraft.FieldSafetyChecks) {
		fields = append(fields, emaildraft.FieldSafetyChecks)
	}
	if m.FieldCleared(emaildraft.FieldApprovalFeedback) {
		fields = append(fields, emaildraft.FieldApprovalFeedback)
	}
	if m.FieldCleared(emaildraft.FieldProviderMessageID) {
		fields = append(fields, emaildraft.FieldProviderMessageID)
	}
	if m.FieldCleared(emaildraft.FieldProviderThreadID) {
		fields = append(fields, emaildraft.FieldProviderThreadID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailDraftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailDraftMutation) ClearField(name string) error {
	switch name {
	case emaildraft.FieldUserID:
		m.ClearUserID()
		return nil
	case emaildraft.FieldCc:
		m.ClearCc()
		return nil
	case emaildraft.FieldBcc:
		m.ClearBcc()
		return nil
	case emaildraft.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case emaildraft.FieldSentAt:
		m.ClearSentAt()
		return nil
	case emaildraft.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case emaildraft.FieldConversationContext:
		m.ClearConversationContext()
		return nil
	case emaildraft.FieldAiReasoning:
		m.ClearAiReasoning()
		return nil
	case emaildraft.FieldSafetyChecks:
		m.ClearSafetyChecks()
		return nil
	case emaildraft.FieldApprovalFeedback:
		m.ClearApprovalFeedback()
		return nil
	case emaildraft.FieldProviderMessageID:
		m.ClearProviderMessageID()
		return nil
	case emaildraft.FieldProviderThreadID:
		m.ClearProviderThreadID()
		return nil
	}
	return fmt.Errorf("unknown EmailDraft nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailDraftMutation) ResetField(name string) error {
	switch name {
	case emaildraft.FieldSessionID:
		m.ResetSessionID()
		return nil
	case emaildraft.FieldUserID:
		m.ResetUserID()
		return nil
	case emaildraft.FieldTo:
		m.ResetTo()
		return nil
	case emaildraft.FieldCc:
		m.ResetCc()
		return nil
	case emaildraft.FieldBcc:
		m.ResetBcc()
		return nil
	case emaildraft.FieldSubject:
		m.ResetSubject()
		return nil
	case emaildraft.FieldBody:
		m.ResetBody()
		return nil
	case emaildraft.FieldTone:
		m.ResetTone()
		return nil
	case emaildraft.FieldPriority:
		m.ResetPriority()
		return nil
	case emaildraft.FieldStatus:
		m.ResetStatus()
		return nil
	case emaildraft.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emaildraft.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case emaildraft.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case emaildraft.FieldSentAt:
		m.ResetSentAt()
		return nil
	case emaildraft.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case emaildraft.FieldConversationContext:
		m.ResetConversationContext()
		return nil
	case emaildraft.FieldAiReasoning:
		m.ResetAiReasoning()
		return nil
	case emaildraft.FieldSafetyChecks:
		m.ResetSafetyChecks()
		return nil
	case emaildraft.FieldApprovalFeedback:
		m.ResetApprovalFeedback()
		return nil
	case emaildraft.FieldProviderMessageID:
		m.ResetProviderMessageID()
		return nil
	case emaildraft.FieldProviderThreadID:
		m.ResetProviderThreadID()
		return nil
	case emaildraft.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	}
	return fmt.Errorf("unknown EmailDraft field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailDraftMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, emaildraft.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailDraftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emaildraft.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailDraftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailDraftMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailDraftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, emaildraft.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailDraftMutation) EdgeCleared(name string) bool {
	switch name {
	case emaildraft.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailDraftMutation) ClearEdge(name string) error {
	switch name {
	case emaildraft.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown EmailDraft unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailDraftMutation) ResetEdge(name string) error {
	switch name {
	case emaildraft.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown EmailDraft edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	created_at      *time.Time
	last_active_at  *time.Time
	clearedFields   map[string]struct{}
	messages        map[string]struct{}
	removedmessages map[string]struct{}
	clearedmessages bool
	drafts          map[string]struct{}
	removeddrafts   map[string]struct{}
	cleareddrafts   bool
	notes           map[string]struct{}
	removednotes    map[string]struct{}
	clearednotes    bool
	files           map[string]struct{}
	removedfiles    map[string]struct{}
	clearedfiles    bool
	done            bool
	oldValue        func(context.Context) (*Session, error)
	predicates      []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *SessionMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[session.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *SessionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[session.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, session.FieldUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActiveAt sets the "last_active_at" field.
func (m *SessionMutation) SetLastActiveAt(t time.Time) {
	m.last_active_at = &t
}

// LastActiveAt returns the value of the "last_active_at" field in the mutation.
func (m *SessionMutation) LastActiveAt() (r time.Time, exists bool) {
	v := m.last_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveAt returns the old "last_active_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastActiveAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveAt: %w", err)
	}
	return oldValue.LastActiveAt, nil
}

// ResetLastActiveAt resets all changes to the "last_active_at" field.
func (m *SessionMutation) ResetLastActiveAt() {
	m.last_active_at = nil
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *SessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *SessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *SessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *SessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *SessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *SessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *SessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddDraftIDs adds the "drafts" edge to the EmailDraft entity by ids.
func (m *SessionMutation) AddDraftIDs(ids ...string) {
	if m.drafts == nil {
		m.drafts = make(map[string]struct{})
	}
	for i := range ids {
		m.drafts[ids[i]] = struct{}{}
	}
}

// ClearDrafts clears the "drafts" edge to the EmailDraft entity.
func (m *SessionMutation) ClearDrafts() {
	m.cleareddrafts = true
}

// DraftsCleared reports if the "drafts" edge to the EmailDraft entity was cleared.
func (m *SessionMutation) DraftsCleared() bool {
	return m.cleareddrafts
}

// RemoveDraftIDs removes the "drafts" edge to the EmailDraft entity by IDs.
func (m *SessionMutation) RemoveDraftIDs(ids ...string) {
	if m.removeddrafts == nil {
		m.removeddrafts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.drafts, ids[i])
		m.removeddrafts[ids[i]] = struct{}{}
	}
}

// RemovedDrafts returns the removed IDs of the "drafts" edge to the EmailDraft entity.
func (m *SessionMutation) RemovedDraftsIDs() (ids []string) {
	for id := range m.removeddrafts {
		ids = append(ids, id)
	}
	return
}

// DraftsIDs returns the "drafts" edge IDs in the mutation.
func (m *SessionMutation) DraftsIDs() (ids []string) {
	for id := range m.drafts {
		ids = append(ids, id)
	}
	return
}

// ResetDrafts resets all changes to the "drafts" edge.
func (m *SessionMutation) ResetDrafts() {
	m.drafts = nil
	m.cleareddrafts = false
	m.removeddrafts = nil
}

// AddNoteIDs adds the "notes" edge to the SessionNote entity by ids.
func (m *SessionMutation) AddNoteIDs(ids ...string) {
	if m.notes == nil {
		m.notes = make(map[string]struct{})
	}
	for i := range ids {
		m.notes[ids[i]] = struct{}{}
	}
}

// ClearNotes clears the "notes" edge to the SessionNote entity.
func (m *SessionMutation) ClearNotes() {
	m.clearednotes = true
}

// NotesCleared reports if the "notes" edge to the SessionNote entity was cleared.
func (m *SessionMutation) NotesCleared() bool {
	return m.clearednotes
}

// RemoveNoteIDs removes the "notes" edge to the SessionNote entity by IDs.
func (m *SessionMutation) RemoveNoteIDs(ids ...string) {
	if m.removednotes == nil {
		m.removednotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notes, ids[i])
		m.removednotes[ids[i]] = struct{}{}
	}
}

// RemovedNotes returns the removed IDs of the "notes" edge to the SessionNote entity.
func (m *SessionMutation) RemovedNotesIDs() (ids []string) {
	for id := range m.removednotes {
		ids = append(ids, id)
	}
	return
}

// NotesIDs returns the "notes" edge IDs in the mutation.
func (m *SessionMutation) NotesIDs() (ids []string) {
	for id := range m.notes {
		ids = append(ids, id)
	}
	return
}

// ResetNotes resets all changes to the "notes" edge.
func (m *SessionMutation) ResetNotes() {
	m.notes = nil
	m.clearednotes = false
	m.removednotes = nil
}

// AddFileIDs adds the "files" edge to the UploadedFile entity by ids.
func (m *SessionMutation) AddFileIDs(ids ...string) {
	if m.files == nil {
		m.files = make(map[string]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the UploadedFile entity.
func (m *SessionMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the UploadedFile entity was cleared.
func (m *SessionMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the UploadedFile entity by IDs.
func (m *SessionMutation) RemoveFileIDs(ids ...string) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the UploadedFile entity.
func (m *SessionMutation) RemovedFilesIDs() (ids []string) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *SessionMutation) FilesIDs() (ids []string) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *SessionMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.last_active_at != nil {
		fields = append(fields, session.FieldLastActiveAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldLastActiveAt:
		return m.LastActiveAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldLastActiveAt:
		return m.OldLastActiveAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldLastActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldUserID) {
		fields = append(fields, session.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldLastActiveAt:
		m.ResetLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.messages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.drafts != nil {
		edges = append(edges, session.EdgeDrafts)
	}
	if m.notes != nil {
		edges = append(edges, session.EdgeNotes)
	}
	if m.files != nil {
		edges = append(edges, session.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeDrafts:
		ids := make([]ent.Value, 0, len(m.drafts))
		for id := range m.drafts {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.notes))
		for id := range m.notes {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.removeddrafts != nil {
		edges = append(edges, session.EdgeDrafts)
	}
	if m.removednotes != nil {
		edges = append(edges, session.EdgeNotes)
	}
	if m.removedfiles != nil {
		edges = append(edges, session.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeDrafts:
		ids := make([]ent.Value, 0, len(m.removeddrafts))
		for id := range m.removeddrafts {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.removednotes))
		for id := range m.removednotes {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmessages {
		edges = append(edges, session.EdgeMessages)
	}
	if m.cleareddrafts {
		edges = append(edges, session.EdgeDrafts)
	}
	if m.clearednotes {
		edges = append(edges, session.EdgeNotes)
	}
	if m.clearedfiles {
		edges = append(edges, session.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeMessages:
		return m.clearedmessages
	case session.EdgeDrafts:
		return m.cleareddrafts
	case session.EdgeNotes:
		return m.clearednotes
	case session.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeMessages:
		m.ResetMessages()
		return nil
	case session.EdgeDrafts:
		m.ResetDrafts()
		return nil
	case session.EdgeNotes:
		m.ResetNotes()
		return nil
	case session.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionNoteMutation represents an operation that mutates the SessionNote nodes in the graph.
type SessionNoteMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	provider_doc_id *string
	url             *string
	content         *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*SessionNote, error)
	predicates      []predicate.SessionNote
}

var _ ent.Mutation = (*SessionNoteMutation)(nil)

// sessionnoteOption allows management of the mutation configuration using functional options.
type sessionnoteOption func(*SessionNoteMutation)

// newSessionNoteMutation creates new mutation for the SessionNote entity.
func newSessionNoteMutation(c config, op Op, opts ...sessionnoteOption) *SessionNoteMutation {
	m := &SessionNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionNoteID sets the ID field of the mutation.
func withSessionNoteID(id string) sessionnoteOption {
	return func(m *SessionNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionNote
		)
		m.oldValue = func(ctx context.Context) (*SessionNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionNote sets the old SessionNote of the mutation.
func withSessionNote(node *SessionNote) sessionnoteOption {
	return func(m *SessionNoteMutation) {
		m.oldValue = func(context.Context) (*SessionNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionNote entities.
func (m *SessionNoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionNoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionNoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionNoteMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionNoteMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionNoteMutation) ResetSessionID() {
	m.session = nil
}

// SetTitle sets the "title" field.
func (m *SessionNoteMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionNoteMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionNoteMutation) ResetTitle() {
	m.title = nil
}

// SetProviderDocID sets the "provider_doc_id" field.
func (m *SessionNoteMutation) SetProviderDocID(s string) {
	m.provider_doc_id = &s
}

// ProviderDocID returns the value of the "provider_doc_id" field in the mutation.
func (m *SessionNoteMutation) ProviderDocID() (r string, exists bool) {
	v := m.provider_doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderDocID returns the old "provider_doc_id" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldProviderDocID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderDocID: %w", err)
	}
	return oldValue.ProviderDocID, nil
}

// ClearProviderDocID clears the value of the "provider_doc_id" field.
func (m *SessionNoteMutation) ClearProviderDocID() {
	m.provider_doc_id = nil
	m.clearedFields[sessionnote.FieldProviderDocID] = struct{}{}
}

// ProviderDocIDCleared returns if the "provider_doc_id" field was cleared in this mutation.
func (m *SessionNoteMutation) ProviderDocIDCleared() bool {
	_, ok := m.clearedFields[sessionnote.FieldProviderDocID]
	return ok
}

// ResetProviderDocID resets all changes to the "provider_doc_id" field.
func (m *SessionNoteMutation) ResetProviderDocID() {
	m.provider_doc_id = nil
	delete(m.clearedFields, sessionnote.FieldProviderDocID)
}

// SetURL sets the "url" field.
func (m *SessionNoteMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SessionNoteMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *SessionNoteMutation) ClearURL() {
	m.url = nil
	m.clearedFields[sessionnote.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *SessionNoteMutation) URLCleared() bool {
	_, ok := m.clearedFields[sessionnote.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *SessionNoteMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, sessionnote.FieldURL)
}

// SetContent sets the "content" field.
func (m *SessionNoteMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SessionNoteMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *SessionNoteMutation) ClearContent() {
	m.content = nil
	m.clearedFields[sessionnote.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *SessionNoteMutation) ContentCleared() bool {
	_, ok := m.clearedFields[sessionnote.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *SessionNoteMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, sessionnote.FieldContent)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionNoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionNoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionNote entity.
// If the SessionNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionNoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionNoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionNoteMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionnote.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionNoteMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionNoteMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionNoteMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionNoteMutation builder.
func (m *SessionNoteMutation) Where(ps ...predicate.SessionNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionNote).
func (m *SessionNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionNoteMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, sessionnote.FieldSessionID)
	}
	if m.title != nil {
		fields = append(fields, sessionnote.FieldTitle)
	}
	if m.provider_doc_id != nil {
		fields = append(fields, sessionnote.FieldProviderDocID)
	}
	if m.url != nil {
		fields = append(fields, sessionnote.FieldURL)
	}
	if m.content != nil {
		fields = append(fields, sessionnote.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, sessionnote.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionnote.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionnote.FieldSessionID:
		return m.SessionID()
	case sessionnote.FieldTitle:
		return m.Title()
	case sessionnote.FieldProviderDocID:
		return m.ProviderDocID()
	case sessionnote.FieldURL:
		return m.URL()
	case sessionnote.FieldContent:
		return m.Content()
	case sessionnote.FieldCreatedAt:
		return m.CreatedAt()
	case sessionnote.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionnote.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionnote.FieldTitle:
		return m.OldTitle(ctx)
	case sessionnote.FieldProviderDocID:
		return m.OldProviderDocID(ctx)
	case sessionnote.FieldURL:
		return m.OldURL(ctx)
	case sessionnote.FieldContent:
		return m.OldContent(ctx)
	case sessionnote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionnote.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionnote.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionnote.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case sessionnote.FieldProviderDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderDocID(v)
		return nil
	case sessionnote.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case sessionnote.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case sessionnote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionnote.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionNoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionNoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionNoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionnote.FieldProviderDocID) {
		fields = append(fields, sessionnote.FieldProviderDocID)
	}
	if m.FieldCleared(sessionnote.FieldURL) {
		fields = append(fields, sessionnote.FieldURL)
	}
	if m.FieldCleared(sessionnote.FieldContent) {
		fields = append(fields, sessionnote.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionNoteMutation) ClearField(name string) error {
	switch name {
	case sessionnote.FieldProviderDocID:
		m.ClearProviderDocID()
		return nil
	case sessionnote.FieldURL:
		m.ClearURL()
		return nil
	case sessionnote.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown SessionNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionNoteMutation) ResetField(name string) error {
	switch name {
	case sessionnote.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionnote.FieldTitle:
		m.ResetTitle()
		return nil
	case sessionnote.FieldProviderDocID:
		m.ResetProviderDocID()
		return nil
	case sessionnote.FieldURL:
		m.ResetURL()
		return nil
	case sessionnote.FieldContent:
		m.ResetContent()
		return nil
	case sessionnote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionnote.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionnote.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionnote.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionnote.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionnote.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionNoteMutation) ClearEdge(name string) error {
	switch name {
	case sessionnote.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionNoteMutation) ResetEdge(name string) error {
	switch name {
	case sessionnote.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionNote edge %s", name)
}

// UploadedFileMutation represents an operation that mutates the UploadedFile nodes in the graph.
type UploadedFileMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	extension      *string
	size           *int64
	addsize        *int64
	content        *[]byte
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*UploadedFile, error)
	predicates     []predicate.UploadedFile
}

var _ ent.Mutation = (*UploadedFileMutation)(nil)

// uploadedfileOption allows management of the mutation configuration using functional options.
type uploadedfileOption func(*UploadedFileMutation)

// newUploadedFileMutation creates new mutation for the UploadedFile entity.
func newUploadedFileMutation(c config, op Op, opts ...uploadedfileOption) *UploadedFileMutation {
	m := &UploadedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadedFileID sets the ID field of the mutation.
func withUploadedFileID(id string) uploadedfileOption {
	return func(m *UploadedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadedFile
		)
		m.oldValue = func(ctx context.Context) (*UploadedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadedFile sets the old UploadedFile of the mutation.
func withUploadedFile(node *UploadedFile) uploadedfileOption {
	return func(m *UploadedFileMutation) {
		m.oldValue = func(context.Context) (*UploadedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadedFile entities.
func (m *UploadedFileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadedFileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadedFileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *UploadedFileMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UploadedFileMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UploadedFileMutation) ResetSessionID() {
	m.session = nil
}

// SetName sets the "name" field.
func (m *UploadedFileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UploadedFileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UploadedFileMutation) ResetName() {
	m.name = nil
}

// SetExtension sets the "extension" field.
func (m *UploadedFileMutation) SetExtension(s string) {
	m.extension = &s
}

// Extension returns the value of the "extension" field in the mutation.
func (m *UploadedFileMutation) Extension() (r string, exists bool) {
	v := m.extension
	if v == nil {
		return
	}
	return *v, true
}

// OldExtension returns the old "extension" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldExtension(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtension is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtension requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtension: %w", err)
	}
	return oldValue.Extension, nil
}

// ResetExtension resets all changes to the "extension" field.
func (m *UploadedFileMutation) ResetExtension() {
	m.extension = nil
}

// SetSize sets the "size" field.
func (m *UploadedFileMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *UploadedFileMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *UploadedFileMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *UploadedFileMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *UploadedFileMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetContent sets the "content" field.
func (m *UploadedFileMutation) SetContent(b []byte) {
	m.content = &b
}

// Content returns the value of the "content" field in the mutation.
func (m *UploadedFileMutation) Content() (r []byte, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldContent(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *UploadedFileMutation) ResetContent() {
	m.content = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *UploadedFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *UploadedFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *UploadedFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *UploadedFileMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[uploadedfile.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *UploadedFileMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *UploadedFileMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *UploadedFileMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the UploadedFileMutation builder.
func (m *UploadedFileMutation) Where(ps ...predicate.UploadedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadedFile).
func (m *UploadedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadedFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, uploadedfile.FieldSessionID)
	}
	if m.name != nil {
		fields = append(fields, uploadedfile.FieldName)
	}
	if m.extension != nil {
		fields = append(fields, uploadedfile.FieldExtension)
	}
	if m.size != nil {
		fields = append(fields, uploadedfile.FieldSize)
	}
	if m.content != nil {
		fields = append(fields, uploadedfile.FieldContent)
	}
	if m.uploaded_at != nil {
		fields = append(fields, uploadedfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadedfile.FieldSessionID:
		return m.SessionID()
	case uploadedfile.FieldName:
		return m.Name()
	case uploadedfile.FieldExtension:
		return m.Extension()
	case uploadedfile.FieldSize:
		return m.Size()
	case uploadedfile.FieldContent:
		return m.Content()
	case uploadedfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadedfile.FieldSessionID:
		return m.OldSessionID(ctx)
	case uploadedfile.FieldName:
		return m.OldName(ctx)
	case uploadedfile.FieldExtension:
		return m.OldExtension(ctx)
	case uploadedfile.FieldSize:
		return m.OldSize(ctx)
	case uploadedfile.FieldContent:
		return m.OldContent(ctx)
	case uploadedfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadedfile.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case uploadedfile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case uploadedfile.FieldExtension:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtension(v)
		return nil
	case uploadedfile.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case uploadedfile.FieldContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case uploadedfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadedFileMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, uploadedfile.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadedFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadedfile.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadedfile.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown UploadedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadedFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadedFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UploadedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadedFileMutation) ResetField(name string) error {
	switch name {
	case uploadedfile.FieldSessionID:
		m.ResetSessionID()
		return nil
	case uploadedfile.FieldName:
		m.ResetName()
		return nil
	case uploadedfile.FieldExtension:
		m.ResetExtension()
		return nil
	case uploadedfile.FieldSize:
		m.ResetSize()
		return nil
	case uploadedfile.FieldContent:
		m.ResetContent()
		return nil
	case uploadedfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, uploadedfile.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadedFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadedfile.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadedFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, uploadedfile.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadedFileMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadedfile.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadedFileMutation) ClearEdge(name string) error {
	switch name {
	case uploadedfile.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadedFileMutation) ResetEdge(name string) error {
	switch name {
	case uploadedfile.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile edge %s", name)
}
