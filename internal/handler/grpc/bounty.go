package grpc

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/service"
)

type ChainReader interface {
	ReadParsedBounty(ctx context.Context, bountyID uint64) (*domain.ParsedChainData, error)
	ReadProposalMappings(ctx context.Context, bountyID, proposalID uint64) (*domain.ProposalMappings, error)
}

type Finalizer interface {
	WaitForTransactionToFinalize(ctx context.Context, transactionID string) bool
}

type BountyHandler struct {
	reader    ChainReader
	finalizer Finalizer
	fees      service.FeeTable
}

func NewBountyHandler(reader ChainReader, finalizer Finalizer) *BountyHandler {
	return &BountyHandler{
		reader:    reader,
		finalizer: finalizer,
		fees:      service.DefaultFees,
	}
}

// NewServer builds a traced gRPC server with the bounty service registered
func NewServer(h *BountyHandler, enableReflection bool, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(logUnary),
	}, opts...)

	server := grpc.NewServer(opts...)
	RegisterBountyServiceServer(server, h)

	// Enable reflection for development
	if enableReflection {
		reflection.Register(server)
	}

	return server
}

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	log.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("took", time.Since(start)).
		Msg("grpc call")
	return resp, err
}

func (h *BountyHandler) ReadBounty(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bountyID, err := uintField(req, "bountyId")
	if err != nil {
		return nil, err
	}

	data, err := h.reader.ReadParsedBounty(ctx, bountyID)
	if err != nil {
		return nil, toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"bountyId": bountyID,
		"creator":  data.Creator,
		"payment":  data.Payment,
		"status":   data.Status,
	})
}

func (h *BountyHandler) ReadProposal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bountyID, err := uintField(req, "bountyId")
	if err != nil {
		return nil, err
	}
	proposalID, err := uintField(req, "proposalId")
	if err != nil {
		return nil, err
	}

	m, err := h.reader.ReadProposalMappings(ctx, bountyID, proposalID)
	if err != nil {
		return nil, toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"compositeId":      service.CompositeProposalID(bountyID, proposalID),
		"proposalBountyId": m.ProposalBountyID,
		"proposalProposer": m.ProposalProposer,
		"proposalStatus":   m.ProposalStatus,
	})
}

func (h *BountyHandler) GetFee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	function := req.GetFields()["function"].GetStringValue()
	if function == "" {
		return nil, status.Error(codes.InvalidArgument, "function is required")
	}

	fee, err := h.fees.FeeFor(function)
	if err != nil {
		return nil, toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"function":     function,
		"microcredits": fee,
	})
}

func (h *BountyHandler) WaitForFinalization(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	txID := req.GetFields()["transactionId"].GetStringValue()
	if txID == "" {
		return nil, status.Error(codes.InvalidArgument, "transactionId is required")
	}

	return structpb.NewStruct(map[string]any{
		"transactionId": txID,
		"finalized":     h.finalizer.WaitForTransactionToFinalize(ctx, txID),
	})
}

func uintField(req *structpb.Struct, name string) (uint64, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n := v.GetNumberValue()
	// float64(1<<64) is the first value that does not fit
	if n < 0 || n != math.Trunc(n) || n >= float64(1<<64) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an unsigned integer", name)
	}
	return uint64(n), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownFunction):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrTransport):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, domain.ErrRejected):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
