// Package v1alpha1 exposes the character sheet over gRPC using the JSON codec
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-sheet/internal/transport/jsoncodec"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.v1alpha1.SheetService"

// SheetServiceServer is the server API for the sheet service
type SheetServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	LevelUp(context.Context, *LevelUpRequest) (*LevelUpResponse, error)
	ApplyRace(context.Context, *ApplyRaceRequest) (*CharacterResponse, error)
	ApplyBackground(context.Context, *ApplyBackgroundRequest) (*CharacterResponse, error)
	FillDescriptions(context.Context, *FillDescriptionsRequest) (*FillDescriptionsResponse, error)
	UpdateFieldValue(context.Context, *UpdateFieldValueRequest) (*CharacterResponse, error)
	SelectChoiceOption(context.Context, *SelectChoiceOptionRequest) (*CharacterResponse, error)
	SpendHitDie(context.Context, *SpendHitDieRequest) (*SpendHitDieResponse, error)
	LongRest(context.Context, *LongRestRequest) (*LongRestResponse, error)
	ShareCharacter(context.Context, *ShareCharacterRequest) (*ShareCharacterResponse, error)
	ImportCharacter(context.Context, *ImportCharacterRequest) (*ImportCharacterResponse, error)
	ConfirmImport(context.Context, *ConfirmImportRequest) (*CharacterResponse, error)
	ListRuleDocuments(context.Context, *ListRuleDocumentsRequest) (*ListRuleDocumentsResponse, error)
}

// SheetServiceDesc describes the sheet service for grpc.Server.RegisterService
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCharacter", SheetServiceServer.CreateCharacter),
		unary("GetCharacter", SheetServiceServer.GetCharacter),
		unary("ListCharacters", SheetServiceServer.ListCharacters),
		unary("DeleteCharacter", SheetServiceServer.DeleteCharacter),
		unary("LevelUp", SheetServiceServer.LevelUp),
		unary("ApplyRace", SheetServiceServer.ApplyRace),
		unary("ApplyBackground", SheetServiceServer.ApplyBackground),
		unary("FillDescriptions", SheetServiceServer.FillDescriptions),
		unary("UpdateFieldValue", SheetServiceServer.UpdateFieldValue),
		unary("SelectChoiceOption", SheetServiceServer.SelectChoiceOption),
		unary("SpendHitDie", SheetServiceServer.SpendHitDie),
		unary("LongRest", SheetServiceServer.LongRest),
		unary("ShareCharacter", SheetServiceServer.ShareCharacter),
		unary("ImportCharacter", SheetServiceServer.ImportCharacter),
		unary("ConfirmImport", SheetServiceServer.ConfirmImport),
		unary("ListRuleDocuments", SheetServiceServer.ListRuleDocuments),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsheet/v1alpha1/sheet.json",
}

// RegisterSheetServiceServer registers srv on the gRPC service registrar
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

func unary[Req, Resp any](
	method string,
	call func(SheetServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// SheetServiceClient is the client API for the sheet service.
// Every call is sent with the JSON content subtype.
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient wraps a client connection
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

func invoke[Resp any](
	ctx context.Context,
	c *SheetServiceClient,
	method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SheetServiceClient) CreateCharacter(
	ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "CreateCharacter", in, opts)
}

func (c *SheetServiceClient) GetCharacter(
	ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "GetCharacter", in, opts)
}

func (c *SheetServiceClient) ListCharacters(
	ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption,
) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c, "ListCharacters", in, opts)
}

func (c *SheetServiceClient) DeleteCharacter(
	ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption,
) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c, "DeleteCharacter", in, opts)
}

func (c *SheetServiceClient) LevelUp(
	ctx context.Context, in *LevelUpRequest, opts ...grpc.CallOption,
) (*LevelUpResponse, error) {
	return invoke[LevelUpResponse](ctx, c, "LevelUp", in, opts)
}

func (c *SheetServiceClient) ApplyRace(
	ctx context.Context, in *ApplyRaceRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "ApplyRace", in, opts)
}

func (c *SheetServiceClient) ApplyBackground(
	ctx context.Context, in *ApplyBackgroundRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "ApplyBackground", in, opts)
}

func (c *SheetServiceClient) FillDescriptions(
	ctx context.Context, in *FillDescriptionsRequest, opts ...grpc.CallOption,
) (*FillDescriptionsResponse, error) {
	return invoke[FillDescriptionsResponse](ctx, c, "FillDescriptions", in, opts)
}

func (c *SheetServiceClient) UpdateFieldValue(
	ctx context.Context, in *UpdateFieldValueRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "UpdateFieldValue", in, opts)
}

func (c *SheetServiceClient) SelectChoiceOption(
	ctx context.Context, in *SelectChoiceOptionRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "SelectChoiceOption", in, opts)
}

func (c *SheetServiceClient) SpendHitDie(
	ctx context.Context, in *SpendHitDieRequest, opts ...grpc.CallOption,
) (*SpendHitDieResponse, error) {
	return invoke[SpendHitDieResponse](ctx, c, "SpendHitDie", in, opts)
}

func (c *SheetServiceClient) LongRest(
	ctx context.Context, in *LongRestRequest, opts ...grpc.CallOption,
) (*LongRestResponse, error) {
	return invoke[LongRestResponse](ctx, c, "LongRest", in, opts)
}

func (c *SheetServiceClient) ShareCharacter(
	ctx context.Context, in *ShareCharacterRequest, opts ...grpc.CallOption,
) (*ShareCharacterResponse, error) {
	return invoke[ShareCharacterResponse](ctx, c, "ShareCharacter", in, opts)
}

func (c *SheetServiceClient) ImportCharacter(
	ctx context.Context, in *ImportCharacterRequest, opts ...grpc.CallOption,
) (*ImportCharacterResponse, error) {
	return invoke[ImportCharacterResponse](ctx, c, "ImportCharacter", in, opts)
}

func (c *SheetServiceClient) ConfirmImport(
	ctx context.Context, in *ConfirmImportRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, "ConfirmImport", in, opts)
}

func (c *SheetServiceClient) ListRuleDocuments(
	ctx context.Context, in *ListRuleDocumentsRequest, opts ...grpc.CallOption,
) (*ListRuleDocumentsResponse, error) {
	return invoke[ListRuleDocumentsResponse](ctx, c, "ListRuleDocuments", in, opts)
}
