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
	"github.com/abhisek/lessonq/ent/predicate"
	"github.com/abhisek/lessonq/ent/progressdoc"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProgressDoc   = "ProgressDoc"
	TypeScheduleEvent = "ScheduleEvent"
)

// ProgressDocMutation represents an operation that mutates the ProgressDoc nodes in the graph.
type ProgressDocMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	track         *string
	level         *string
	quota         *int
	addquota      *int
	revision      *int64
	addrevision   *int64
	data          *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProgressDoc, error)
	predicates    []predicate.ProgressDoc
}

var _ ent.Mutation = (*ProgressDocMutation)(nil)

// progressdocOption allows management of the mutation configuration using functional options.
type progressdocOption func(*ProgressDocMutation)

// newProgressDocMutation creates new mutation for the ProgressDoc entity.
func newProgressDocMutation(c config, op Op, opts ...progressdocOption) *ProgressDocMutation {
	m := &ProgressDocMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressDocID sets the ID field of the mutation.
func withProgressDocID(id int) progressdocOption {
	return func(m *ProgressDocMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressDoc
		)
		m.oldValue = func(ctx context.Context) (*ProgressDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressDoc sets the old ProgressDoc of the mutation.
func withProgressDoc(node *ProgressDoc) progressdocOption {
	return func(m *ProgressDocMutation) {
		m.oldValue = func(context.Context) (*ProgressDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressDocMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressDocMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProgressDocMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProgressDocMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldUserID(ctx context.Context) (v string, err error) {
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

// ResetUserID resets all changes to the "user_id" field.
func (m *ProgressDocMutation) ResetUserID() {
	m.user_id = nil
}

// SetTrack sets the "track" field.
func (m *ProgressDocMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *ProgressDocMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *ProgressDocMutation) ResetTrack() {
	m.track = nil
}

// SetLevel sets the "level" field.
func (m *ProgressDocMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *ProgressDocMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *ProgressDocMutation) ResetLevel() {
	m.level = nil
}

// SetQuota sets the "quota" field.
func (m *ProgressDocMutation) SetQuota(i int) {
	m.quota = &i
	m.addquota = nil
}

// Quota returns the value of the "quota" field in the mutation.
func (m *ProgressDocMutation) Quota() (r int, exists bool) {
	v := m.quota
	if v == nil {
		return
	}
	return *v, true
}

// OldQuota returns the old "quota" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldQuota(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuota: %w", err)
	}
	return oldValue.Quota, nil
}

// AddQuota adds i to the "quota" field.
func (m *ProgressDocMutation) AddQuota(i int) {
	if m.addquota != nil {
		*m.addquota += i
	} else {
		m.addquota = &i
	}
}

// AddedQuota returns the value that was added to the "quota" field in this mutation.
func (m *ProgressDocMutation) AddedQuota() (r int, exists bool) {
	v := m.addquota
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuota resets all changes to the "quota" field.
func (m *ProgressDocMutation) ResetQuota() {
	m.quota = nil
	m.addquota = nil
}

// SetRevision sets the "revision" field.
func (m *ProgressDocMutation) SetRevision(i int64) {
	m.revision = &i
	m.addrevision = nil
}

// Revision returns the value of the "revision" field in the mutation.
func (m *ProgressDocMutation) Revision() (r int64, exists bool) {
	v := m.revision
	if v == nil {
		return
	}
	return *v, true
}

// OldRevision returns the old "revision" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldRevision(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevision: %w", err)
	}
	return oldValue.Revision, nil
}

// AddRevision adds i to the "revision" field.
func (m *ProgressDocMutation) AddRevision(i int64) {
	if m.addrevision != nil {
		*m.addrevision += i
	} else {
		m.addrevision = &i
	}
}

// AddedRevision returns the value that was added to the "revision" field in this mutation.
func (m *ProgressDocMutation) AddedRevision() (r int64, exists bool) {
	v := m.addrevision
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevision resets all changes to the "revision" field.
func (m *ProgressDocMutation) ResetRevision() {
	m.revision = nil
	m.addrevision = nil
}

// SetData sets the "data" field.
func (m *ProgressDocMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ProgressDocMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ProgressDocMutation) ResetData() {
	m.data = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProgressDocMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProgressDocMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProgressDoc entity.
// If the ProgressDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressDocMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProgressDocMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProgressDocMutation builder.
func (m *ProgressDocMutation) Where(ps ...predicate.ProgressDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressDoc).
func (m *ProgressDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressDocMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, progressdoc.FieldUserID)
	}
	if m.track != nil {
		fields = append(fields, progressdoc.FieldTrack)
	}
	if m.level != nil {
		fields = append(fields, progressdoc.FieldLevel)
	}
	if m.quota != nil {
		fields = append(fields, progressdoc.FieldQuota)
	}
	if m.revision != nil {
		fields = append(fields, progressdoc.FieldRevision)
	}
	if m.data != nil {
		fields = append(fields, progressdoc.FieldData)
	}
	if m.updated_at != nil {
		fields = append(fields, progressdoc.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressdoc.FieldUserID:
		return m.UserID()
	case progressdoc.FieldTrack:
		return m.Track()
	case progressdoc.FieldLevel:
		return m.Level()
	case progressdoc.FieldQuota:
		return m.Quota()
	case progressdoc.FieldRevision:
		return m.Revision()
	case progressdoc.FieldData:
		return m.Data()
	case progressdoc.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressdoc.FieldUserID:
		return m.OldUserID(ctx)
	case progressdoc.FieldTrack:
		return m.OldTrack(ctx)
	case progressdoc.FieldLevel:
		return m.OldLevel(ctx)
	case progressdoc.FieldQuota:
		return m.OldQuota(ctx)
	case progressdoc.FieldRevision:
		return m.OldRevision(ctx)
	case progressdoc.FieldData:
		return m.OldData(ctx)
	case progressdoc.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressdoc.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case progressdoc.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case progressdoc.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case progressdoc.FieldQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuota(v)
		return nil
	case progressdoc.FieldRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevision(v)
		return nil
	case progressdoc.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case progressdoc.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressDocMutation) AddedFields() []string {
	var fields []string
	if m.addquota != nil {
		fields = append(fields, progressdoc.FieldQuota)
	}
	if m.addrevision != nil {
		fields = append(fields, progressdoc.FieldRevision)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressdoc.FieldQuota:
		return m.AddedQuota()
	case progressdoc.FieldRevision:
		return m.AddedRevision()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressdoc.FieldQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuota(v)
		return nil
	case progressdoc.FieldRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevision(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressDocMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressDocMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProgressDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressDocMutation) ResetField(name string) error {
	switch name {
	case progressdoc.FieldUserID:
		m.ResetUserID()
		return nil
	case progressdoc.FieldTrack:
		m.ResetTrack()
		return nil
	case progressdoc.FieldLevel:
		m.ResetLevel()
		return nil
	case progressdoc.FieldQuota:
		m.ResetQuota()
		return nil
	case progressdoc.FieldRevision:
		m.ResetRevision()
		return nil
	case progressdoc.FieldData:
		m.ResetData()
		return nil
	case progressdoc.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressDocMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressDocMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressDocMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressDocMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressDocMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressDoc edge %s", name)
}

// ScheduleEventMutation represents an operation that mutates the ScheduleEvent nodes in the graph.
type ScheduleEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	user_id          *string
	track            *string
	kind             *string
	day              *string
	lesson_nos       *[]int
	appendlesson_nos []int
	run_id           *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ScheduleEvent, error)
	predicates       []predicate.ScheduleEvent
}

var _ ent.Mutation = (*ScheduleEventMutation)(nil)

// scheduleeventOption allows management of the mutation configuration using functional options.
type scheduleeventOption func(*ScheduleEventMutation)

// newScheduleEventMutation creates new mutation for the ScheduleEvent entity.
func newScheduleEventMutation(c config, op Op, opts ...scheduleeventOption) *ScheduleEventMutation {
	m := &ScheduleEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleEventID sets the ID field of the mutation.
func withScheduleEventID(id int) scheduleeventOption {
	return func(m *ScheduleEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleEvent
		)
		m.oldValue = func(ctx context.Context) (*ScheduleEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleEvent sets the old ScheduleEvent of the mutation.
func withScheduleEvent(node *ScheduleEvent) scheduleeventOption {
	return func(m *ScheduleEventMutation) {
		m.oldValue = func(context.Context) (*ScheduleEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScheduleEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScheduleEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ScheduleEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScheduleEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScheduleEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScheduleEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScheduleEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScheduleEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *ScheduleEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScheduleEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldUserID(ctx context.Context) (v string, err error) {
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

// ResetUserID resets all changes to the "user_id" field.
func (m *ScheduleEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetTrack sets the "track" field.
func (m *ScheduleEventMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *ScheduleEventMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *ScheduleEventMutation) ResetTrack() {
	m.track = nil
}

// SetKind sets the "kind" field.
func (m *ScheduleEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ScheduleEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ScheduleEventMutation) ResetKind() {
	m.kind = nil
}

// SetDay sets the "day" field.
func (m *ScheduleEventMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *ScheduleEventMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *ScheduleEventMutation) ResetDay() {
	m.day = nil
}

// SetLessonNos sets the "lesson_nos" field.
func (m *ScheduleEventMutation) SetLessonNos(i []int) {
	m.lesson_nos = &i
	m.appendlesson_nos = nil
}

// LessonNos returns the value of the "lesson_nos" field in the mutation.
func (m *ScheduleEventMutation) LessonNos() (r []int, exists bool) {
	v := m.lesson_nos
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonNos returns the old "lesson_nos" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldLessonNos(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonNos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonNos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonNos: %w", err)
	}
	return oldValue.LessonNos, nil
}

// AppendLessonNos adds i to the "lesson_nos" field.
func (m *ScheduleEventMutation) AppendLessonNos(i []int) {
	m.appendlesson_nos = append(m.appendlesson_nos, i...)
}

// AppendedLessonNos returns the list of values that were appended to the "lesson_nos" field in this mutation.
func (m *ScheduleEventMutation) AppendedLessonNos() ([]int, bool) {
	if len(m.appendlesson_nos) == 0 {
		return nil, false
	}
	return m.appendlesson_nos, true
}

// ResetLessonNos resets all changes to the "lesson_nos" field.
func (m *ScheduleEventMutation) ResetLessonNos() {
	m.lesson_nos = nil
	m.appendlesson_nos = nil
}

// SetRunID sets the "run_id" field.
func (m *ScheduleEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ScheduleEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ScheduleEventMutation) ResetRunID() {
	m.run_id = nil
}

// Where appends a list predicates to the ScheduleEventMutation builder.
func (m *ScheduleEventMutation) Where(ps ...predicate.ScheduleEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleEvent).
func (m *ScheduleEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, scheduleevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scheduleevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, scheduleevent.FieldUserID)
	}
	if m.track != nil {
		fields = append(fields, scheduleevent.FieldTrack)
	}
	if m.kind != nil {
		fields = append(fields, scheduleevent.FieldKind)
	}
	if m.day != nil {
		fields = append(fields, scheduleevent.FieldDay)
	}
	if m.lesson_nos != nil {
		fields = append(fields, scheduleevent.FieldLessonNos)
	}
	if m.run_id != nil {
		fields = append(fields, scheduleevent.FieldRunID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduleevent.FieldSequence:
		return m.Sequence()
	case scheduleevent.FieldTimestamp:
		return m.Timestamp()
	case scheduleevent.FieldUserID:
		return m.UserID()
	case scheduleevent.FieldTrack:
		return m.Track()
	case scheduleevent.FieldKind:
		return m.Kind()
	case scheduleevent.FieldDay:
		return m.Day()
	case scheduleevent.FieldLessonNos:
		return m.LessonNos()
	case scheduleevent.FieldRunID:
		return m.RunID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduleevent.FieldSequence:
		return m.OldSequence(ctx)
	case scheduleevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scheduleevent.FieldUserID:
		return m.OldUserID(ctx)
	case scheduleevent.FieldTrack:
		return m.OldTrack(ctx)
	case scheduleevent.FieldKind:
		return m.OldKind(ctx)
	case scheduleevent.FieldDay:
		return m.OldDay(ctx)
	case scheduleevent.FieldLessonNos:
		return m.OldLessonNos(ctx)
	case scheduleevent.FieldRunID:
		return m.OldRunID(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduleevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scheduleevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scheduleevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scheduleevent.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case scheduleevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case scheduleevent.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case scheduleevent.FieldLessonNos:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonNos(v)
		return nil
	case scheduleevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scheduleevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduleevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduleevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScheduleEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleEventMutation) ResetField(name string) error {
	switch name {
	case scheduleevent.FieldSequence:
		m.ResetSequence()
		return nil
	case scheduleevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scheduleevent.FieldUserID:
		m.ResetUserID()
		return nil
	case scheduleevent.FieldTrack:
		m.ResetTrack()
		return nil
	case scheduleevent.FieldKind:
		m.ResetKind()
		return nil
	case scheduleevent.FieldDay:
		m.ResetDay()
		return nil
	case scheduleevent.FieldLessonNos:
		m.ResetLessonNos()
		return nil
	case scheduleevent.FieldRunID:
		m.ResetRunID()
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduleEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduleEvent edge %s", name)
}
