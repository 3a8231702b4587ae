package models

import "encoding/json"

// Error codes returned in ErrorResponse.Code
const (
	CodeInvalidInput    = "invalid_input"
	CodeNotFound        = "not_found"
	CodeSelfSelection   = "self_selection"
	CodeAlreadyAssigned = "already_assigned"
	CodeTargetTaken     = "target_taken"
	CodeDuplicateName   = "duplicate_name"
	CodeUnauthorized    = "unauthorized"
	CodeInternal        = "internal"
)

// Request types

type LoginRequest struct {
	Name string `json:"name"`
}

type SelectRequest struct {
	PickerID int64 `json:"picker_id"`
	TargetID int64 `json:"target_id"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type SeedRequest struct {
	Names NameList `json:"names"`
}

// NameList decodes a JSON array keeping only its string entries; numbers,
// objects and nulls in the array are dropped rather than failing the request.
type NameList []string

func (n *NameList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*n = nil
		return nil
	}

	names := make(NameList, 0, len(raw))
	for _, entry := range raw {
		var name string
		if err := json.Unmarshal(entry, &name); err != nil {
			continue
		}
		names = append(names, name)
	}
	*n = names
	return nil
}

// Response types

type NameEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type NamesResponse struct {
	Participants []NameEntry `json:"participants"`
}

type TakenResponse struct {
	IDs []int64 `json:"ids"`
}

type LoginResponse struct {
	Participant Participant `json:"participant"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type SeedResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type AdminParticipant struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	SelectedTargetID   *int64  `json:"selected_target_id"`
	SelectedTargetName *string `json:"selected_target_name"`
}

type AdminRosterResponse struct {
	Participants []AdminParticipant `json:"participants"`
}

// Domain types

// Participant is one roster entry. SelectedTargetID is nil until the
// participant claims a target and never changes afterwards.
type Participant struct {
	ID               int64  `json:"id" bson:"id"`
	Name             string `json:"name" bson:"name"`
	SelectedTargetID *int64 `json:"selected_target_id,omitempty" bson:"selectedTargetId,omitempty"`
}

// HasSelection reports whether the participant already claimed a target
func (p Participant) HasSelection() bool {
	return p.SelectedTargetID != nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
