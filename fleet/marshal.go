package fleet

import (
	"errors"
	"sort"
	"strconv"

	"github.com/corvusHold/fleet/wire"
)

// ServiceName is the wire name of the Corvus Fleet service.
const ServiceName = "CorvusFleet"

// apiVersion is the protocol version every request carries.
const apiVersion = "2025-01-20"

// ErrNilRequest is returned by every marshaller when the request is nil.
// No partial wire request is constructed in that case.
var ErrNilRequest = errors.New("fleet: nil request passed to marshal")

// Action names.
const (
	opCancelCommand               = "CancelCommand"
	opCreateAssociation           = "CreateAssociation"
	opCreateAssociationBatch      = "CreateAssociationBatch"
	opCreateDocument              = "CreateDocument"
	opDeleteAssociation           = "DeleteAssociation"
	opDeleteDocument              = "DeleteDocument"
	opDescribeAssociation         = "DescribeAssociation"
	opDescribeDocument            = "DescribeDocument"
	opDescribeDocumentPermission  = "DescribeDocumentPermission"
	opDescribeInstanceInformation = "DescribeInstanceInformation"
	opGetDocument                 = "GetDocument"
	opListAssociations            = "ListAssociations"
	opListCommandInvocations      = "ListCommandInvocations"
	opListCommands                = "ListCommands"
	opListDocuments               = "ListDocuments"
	opModifyDocumentPermission    = "ModifyDocumentPermission"
	opSendCommand                 = "SendCommand"
	opUpdateAssociationStatus     = "UpdateAssociationStatus"
)

func newWireRequest(action string) *wire.Request {
	return wire.New(ServiceName, action, apiVersion)
}

// addFilterList emits a filter list under the fixed dotted convention:
//
//	Filters.Filter.<i>.Name
//	Filters.Filter.<i>.Values.Value.<j>
//
// Indices are 1-based and assigned per loop. A nil name or value is
// omitted, but its index position still advances; outer and inner indices
// advance independently. A nil slice (never set by the caller) emits
// nothing and skips the walk; a non-nil empty slice walks zero elements.
func addFilterList(r *wire.Request, filters []*Filter) {
	if filters == nil {
		return
	}
	filterIndex := 1
	for _, f := range filters {
		if f != nil {
			if f.Name != nil {
				r.AddParam("Filters.Filter."+strconv.Itoa(filterIndex)+".Name", *f.Name)
			}
			if f.Values != nil {
				valueIndex := 1
				for _, v := range f.Values {
					if v != nil {
						r.AddParam("Filters.Filter."+strconv.Itoa(filterIndex)+
							".Values.Value."+strconv.Itoa(valueIndex), *v)
					}
					valueIndex++
				}
			}
		}
		filterIndex++
	}
}

// addStringList emits a plain string list as <prefix>.<i>, e.g.
// "InstanceIds.InstanceId.1". Nil entries are omitted without renumbering
// later entries.
func addStringList(r *wire.Request, prefix string, values []*string) {
	if values == nil {
		return
	}
	index := 1
	for _, v := range values {
		if v != nil {
			r.AddParam(prefix+"."+strconv.Itoa(index), *v)
		}
		index++
	}
}

// addParameterMap emits a parameter map under
//
//	<prefix>.<i>.Name
//	<prefix>.<i>.Values.Value.<j>
//
// Go maps carry no insertion order, so entries are walked in sorted key
// order to keep the wire form deterministic.
func addParameterMap(r *wire.Request, prefix string, params map[string][]*string) {
	if params == nil {
		return
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entryIndex := 1
	for _, k := range keys {
		r.AddParam(prefix+"."+strconv.Itoa(entryIndex)+".Name", k)
		values := params[k]
		if values != nil {
			valueIndex := 1
			for _, v := range values {
				if v != nil {
					r.AddParam(prefix+"."+strconv.Itoa(entryIndex)+
						".Values.Value."+strconv.Itoa(valueIndex), *v)
				}
				valueIndex++
			}
		}
		entryIndex++
	}
}
