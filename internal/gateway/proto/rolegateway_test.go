package proto

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

func TestAddRolesRequest_MarshalUnmarshal(t *testing.T) {
	original := &AddRolesRequest{
		GuildId: 42,
		UserId:  1001,
		RoleIds: []uint64{7, 8, 9},
	}

	// Marshal
	data, err := proto.Marshal(protoadapt.MessageV2Of(original))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	// Unmarshal
	decoded := &AddRolesRequest{}
	err = proto.Unmarshal(data, protoadapt.MessageV2Of(decoded))
	if err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	// Verify
	if decoded.GuildId != original.GuildId {
		t.Errorf("GuildId mismatch: got %v, want %v", decoded.GuildId, original.GuildId)
	}
	if decoded.UserId != original.UserId {
		t.Errorf("UserId mismatch: got %v, want %v", decoded.UserId, original.UserId)
	}
	if len(decoded.RoleIds) != len(original.RoleIds) {
		t.Fatalf("RoleIds length mismatch: got %v, want %v", len(decoded.RoleIds), len(original.RoleIds))
	}
	for i := range original.RoleIds {
		if decoded.RoleIds[i] != original.RoleIds[i] {
			t.Errorf("RoleIds[%d] mismatch: got %v, want %v", i, decoded.RoleIds[i], original.RoleIds[i])
		}
	}
}

func TestRolesResponse_MarshalUnmarshal(t *testing.T) {
	original := &RolesResponse{
		RoleIds: []uint64{100, 200, 300},
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(original))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	decoded := &RolesResponse{}
	err = proto.Unmarshal(data, protoadapt.MessageV2Of(decoded))
	if err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if len(decoded.RoleIds) != len(original.RoleIds) {
		t.Fatalf("RoleIds length mismatch: got %v, want %v", len(decoded.RoleIds), len(original.RoleIds))
	}
	for i := range original.RoleIds {
		if decoded.RoleIds[i] != original.RoleIds[i] {
			t.Errorf("RoleIds[%d] mismatch: got %v, want %v", i, decoded.RoleIds[i], original.RoleIds[i])
		}
	}
}

func TestRolesResponse_EmptyMessage(t *testing.T) {
	data, err := proto.Marshal(protoadapt.MessageV2Of(&RolesResponse{}))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	decoded := &RolesResponse{}
	if err := proto.Unmarshal(data, protoadapt.MessageV2Of(decoded)); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(decoded.RoleIds) != 0 {
		t.Errorf("RoleIds should be empty, got %v", decoded.RoleIds)
	}
}
