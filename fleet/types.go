package fleet

import "time"

// Pointer helpers for optional request fields.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Time returns a pointer to t.
func Time(t time.Time) *time.Time { return &t }

// Filter narrows a list or describe operation to matching resources. A nil
// Filters slice on a request means the caller never set it; a non-nil empty
// slice means the caller supplied an empty list explicitly. Both produce no
// filter parameters on the wire, but the marshaller honours the distinction
// when deciding whether to walk the list at all.
type Filter struct {
	// Name of the attribute to filter on, e.g. "PingStatus".
	Name *string
	// Values the attribute may take. Nil entries are skipped on the wire
	// without renumbering later entries' positions.
	Values []*string
}

// AssociationBatchEntry describes one association in a CreateAssociationBatch
// request.
type AssociationBatchEntry struct {
	Name       *string
	InstanceID *string
}

// AssociationStatus carries the agent-reported state of an association.
type AssociationStatus struct {
	Date           *time.Time
	Name           *string
	Message        *string
	AdditionalInfo *string
}

// --- Request types. Optional scalars are pointers; unset fields are
// omitted from the wire form entirely.

// CancelCommandRequest asks the service to stop a command that has not yet
// run on the targeted instances.
type CancelCommandRequest struct {
	CommandID   *string
	InstanceIDs []*string
}

type CreateAssociationRequest struct {
	Name       *string
	InstanceID *string
	Parameters map[string][]*string
}

type CreateAssociationBatchRequest struct {
	Entries []*AssociationBatchEntry
}

type CreateDocumentRequest struct {
	Name    *string
	Content *string
}

type DeleteAssociationRequest struct {
	Name       *string
	InstanceID *string
}

type DeleteDocumentRequest struct {
	Name *string
}

type DescribeAssociationRequest struct {
	Name       *string
	InstanceID *string
}

type DescribeDocumentRequest struct {
	Name *string
}

type DescribeDocumentPermissionRequest struct {
	Name           *string
	PermissionType *string
}

type DescribeInstanceInformationRequest struct {
	Filters    []*Filter
	MaxRecords *int
	Marker     *string
}

type GetDocumentRequest struct {
	Name *string
}

type ListAssociationsRequest struct {
	Filters    []*Filter
	MaxRecords *int
	Marker     *string
}

type ListCommandInvocationsRequest struct {
	CommandID  *string
	InstanceID *string
	Details    *bool
	Filters    []*Filter
	MaxRecords *int
	Marker     *string
}

type ListCommandsRequest struct {
	CommandID  *string
	InstanceID *string
	Filters    []*Filter
	MaxRecords *int
	Marker     *string
}

type ListDocumentsRequest struct {
	Filters    []*Filter
	MaxRecords *int
	Marker     *string
}

type ModifyDocumentPermissionRequest struct {
	Name               *string
	PermissionType     *string
	AccountIDsToAdd    []*string
	AccountIDsToRemove []*string
}

// SendCommandRequest runs a document on a set of instances. ClientToken is
// an idempotency token; the marshaller fills it with a fresh UUID when the
// caller leaves it unset.
type SendCommandRequest struct {
	DocumentName    *string
	InstanceIDs     []*string
	Parameters      map[string][]*string
	TimeoutSeconds  *int
	Comment         *string
	OutputBucket    *string
	OutputKeyPrefix *string
	ClientToken     *string
}

type UpdateAssociationStatusRequest struct {
	Name       *string
	InstanceID *string
	Status     *AssociationStatus
}

// --- Shared result shapes. XML tags follow the service's response
// envelope; decoding them is the transport's concern, not the bindings'.

type DocumentIdentifier struct {
	Name string `xml:"Name"`
}

type DocumentDescription struct {
	Name      string    `xml:"Name"`
	Status    string    `xml:"Status"`
	SHA1      string    `xml:"Sha1"`
	CreatedAt time.Time `xml:"CreatedDate"`
}

type Association struct {
	Name       string `xml:"Name"`
	InstanceID string `xml:"InstanceId"`
}

type AssociationDescription struct {
	Name       string             `xml:"Name"`
	InstanceID string             `xml:"InstanceId"`
	Date       time.Time          `xml:"Date"`
	Status     *AssociationStatus `xml:"Status"`
}

type FailedAssociation struct {
	Entry   *AssociationBatchEntry `xml:"Entry"`
	Message string                 `xml:"Message"`
	Fault   string                 `xml:"Fault"`
}

type Command struct {
	CommandID    string    `xml:"CommandId"`
	DocumentName string    `xml:"DocumentName"`
	InstanceIDs  []string  `xml:"InstanceIds>InstanceId"`
	Status       string    `xml:"Status"`
	Comment      string    `xml:"Comment"`
	RequestedAt  time.Time `xml:"RequestedDateTime"`
	ExpiresAfter time.Time `xml:"ExpiresAfter"`
}

type CommandInvocation struct {
	CommandID   string    `xml:"CommandId"`
	InstanceID  string    `xml:"InstanceId"`
	Status      string    `xml:"Status"`
	RequestedAt time.Time `xml:"RequestedDateTime"`
	TraceOutput string    `xml:"TraceOutput"`
}

type InstanceInformation struct {
	InstanceID      string    `xml:"InstanceId"`
	AgentVersion    string    `xml:"AgentVersion"`
	PingStatus      string    `xml:"PingStatus"`
	LastPingAt      time.Time `xml:"LastPingDateTime"`
	PlatformType    string    `xml:"PlatformType"`
	IsLatestVersion bool      `xml:"IsLatestVersion"`
}

// --- Result types, one per operation.

type CancelCommandResult struct{}

type CreateAssociationResult struct {
	Description *AssociationDescription `xml:"AssociationDescription"`
}

type CreateAssociationBatchResult struct {
	Successful []*AssociationDescription `xml:"Successful>AssociationDescription"`
	Failed     []*FailedAssociation      `xml:"Failed>FailedCreateAssociationEntry"`
}

type CreateDocumentResult struct {
	Description *DocumentDescription `xml:"DocumentDescription"`
}

type DeleteAssociationResult struct{}

type DeleteDocumentResult struct{}

type DescribeAssociationResult struct {
	Description *AssociationDescription `xml:"AssociationDescription"`
}

type DescribeDocumentResult struct {
	Description *DocumentDescription `xml:"Document"`
}

type DescribeDocumentPermissionResult struct {
	AccountIDs []string `xml:"AccountIds>AccountId"`
}

type DescribeInstanceInformationResult struct {
	Instances []*InstanceInformation `xml:"InstanceInformationList>InstanceInformation"`
	Marker    *string                `xml:"NextToken"`
}

type GetDocumentResult struct {
	Name    string `xml:"Name"`
	Content string `xml:"Content"`
}

type ListAssociationsResult struct {
	Associations []*Association `xml:"Associations>Association"`
	Marker       *string        `xml:"NextToken"`
}

type ListCommandInvocationsResult struct {
	Invocations []*CommandInvocation `xml:"CommandInvocations>CommandInvocation"`
	Marker      *string              `xml:"NextToken"`
}

type ListCommandsResult struct {
	Commands []*Command `xml:"Commands>Command"`
	Marker   *string    `xml:"NextToken"`
}

type ListDocumentsResult struct {
	Identifiers []*DocumentIdentifier `xml:"DocumentIdentifiers>DocumentIdentifier"`
	Marker      *string               `xml:"NextToken"`
}

type ModifyDocumentPermissionResult struct{}

type SendCommandResult struct {
	Command *Command `xml:"Command"`
}

type UpdateAssociationStatusResult struct {
	Description *AssociationDescription `xml:"AssociationDescription"`
}
