package txnorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/pkg/logger"

	"github.com/gagliardetto/solana-go"
)

// Program ids recognized by DefaultRules.
var (
	SystemProgramID        = solana.SystemProgramID.String()
	TokenProgramID         = solana.TokenProgramID.String()
	TokenMetadataProgramID = solana.TokenMetadataProgramID.String()
	MagicEdenV2ProgramID   = solana.MustPublicKeyFromBase58("M2mx93ekt1fmXSVkTrUL9xVFHkmME8HTUi5Cyc5aF7K").String()
	OpenSeaProgramID       = solana.MustPublicKeyFromBase58("3o9d13qUvEuuauhFrVom1vuCzgNsJifeaBYDPquaT73Y").String()
	CoralCubeProgramID     = solana.MustPublicKeyFromBase58("A7p8451ktDCHq5yYaHczeLMYsjRsAkzc3hCXcSrwYHU7").String()
)

var errMalformedInnerInstructions = errors.New("malformed inner instructions")

// RuleFunc classifies a record whose primary program id matched the rule.
// ProgramID on the returned Details is filled in by the Classifier.
type RuleFunc func(ctx context.Context, raw Raw) (Details, error)

// Rule binds a program id to the function that classifies its transactions.
type Rule struct {
	ProgramID string
	Classify  RuleFunc
}

// DefaultRules returns the built-in classification table. The slice is a
// fresh copy on every call.
func DefaultRules() []Rule {
	return []Rule{
		{ProgramID: SystemProgramID, Classify: classifyNativeTransfer},
		{ProgramID: TokenProgramID, Classify: classifyTokenTransfer},
		{ProgramID: TokenMetadataProgramID, Classify: classifyMetadata},
		{ProgramID: MagicEdenV2ProgramID, Classify: Fixed(TypeNFTSale)},
		{ProgramID: OpenSeaProgramID, Classify: Fixed(TypeNFTSale)},
		{ProgramID: CoralCubeProgramID, Classify: classifyCoralCube},
	}
}

// Fixed returns a RuleFunc that always yields t with no amount or mint.
func Fixed(t Type) RuleFunc {
	return func(context.Context, Raw) (Details, error) {
		return Details{Type: t}, nil
	}
}

// Classifier assigns a Type to records by looking up their primary program
// id (accountKeys[0]) in an ordered rule table. The first matching rule wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a Classifier over rules, in order. With no rules every
// record is UNKNOWN; use DefaultRules for the built-in table.
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{
		rules: append([]Rule(nil), rules...),
	}
}

// Classify returns the Details of raw. Records whose program id matches no
// rule are UNKNOWN with no amount or mint. Errors from a rule are returned
// unchanged.
func (c *Classifier) Classify(ctx context.Context, raw Raw) (Details, error) {
	programID := accountKey(raw, 0)

	if programID != "" {
		for _, rule := range c.rules {
			if rule.ProgramID != programID || rule.Classify == nil {
				continue
			}

			details, err := rule.Classify(ctx, raw)
			if err != nil {
				return Details{}, err
			}

			details.ProgramID = programID
			return details, nil
		}
	}

	return Details{Type: TypeUnknown, ProgramID: programID}, nil
}

func classifyNativeTransfer(ctx context.Context, raw Raw) (Details, error) {
	amount, err := NativeAmount(raw)
	if err != nil {
		logger.Error(ctx, "failed to extract native amount", "error", err)
		recordExtractionFailure(ctx, "native_amount")
		amount = 0
	}

	return Details{Type: TypeTransfer, Amount: &amount}, nil
}

func classifyTokenTransfer(ctx context.Context, raw Raw) (Details, error) {
	token, err := TokenDetails(raw)
	if err != nil {
		logger.Error(ctx, "failed to extract token details", "error", err)
		recordExtractionFailure(ctx, "token_details")
		token = TokenAmount{}
	}

	return Details{Type: TypeTokenTransfer, Amount: token.Amount, Mint: token.Mint}, nil
}

// classifyMetadata is a mint only when the token program was invoked as an
// inner instruction.
func classifyMetadata(_ context.Context, raw Raw) (Details, error) {
	invoked, err := invokesInner(raw, TokenProgramID)
	if err != nil {
		return Details{}, err
	}

	if invoked {
		return Details{Type: TypeNFTMint}, nil
	}
	return Details{Type: TypeUnknown}, nil
}

// classifyCoralCube is a sale whenever meta.innerInstructions is present and
// not null, whatever its shape.
func classifyCoralCube(_ context.Context, raw Raw) (Details, error) {
	if v, ok := raw.Lookup("meta", "innerInstructions"); ok && v != nil {
		return Details{Type: TypeNFTSale}, nil
	}
	return Details{Type: TypeNFTTransfer}, nil
}

// innerInstructionGroups returns meta.innerInstructions; absent or null is an
// empty list, any other non-list value is malformed.
func innerInstructionGroups(raw Raw) ([]any, error) {
	v, ok := raw.Lookup("meta", "innerInstructions")
	if !ok || v == nil {
		return nil, nil
	}

	groups, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: innerInstructions is %T, not a list", errMalformedInnerInstructions, v)
	}
	return groups, nil
}

// invokesInner reports whether any inner instruction ran programID. The
// program of an instruction is its `programId`, or the account key at
// `programIdIndex` in the compiled encoding.
func invokesInner(raw Raw, programID string) (bool, error) {
	groups, err := innerInstructionGroups(raw)
	if err != nil {
		return false, err
	}

	for i, g := range groups {
		group, ok := asObject(g)
		if !ok {
			return false, fmt.Errorf("%w: group %d is not an object", errMalformedInnerInstructions, i)
		}

		instructions, ok := group.List("instructions")
		if !ok {
			return false, fmt.Errorf("%w: group %d has no instruction list", errMalformedInnerInstructions, i)
		}

		for j, ix := range instructions {
			instruction, ok := asObject(ix)
			if !ok {
				return false, fmt.Errorf("%w: instruction %d.%d is not an object", errMalformedInnerInstructions, i, j)
			}

			if instructionProgram(raw, instruction) == programID {
				return true, nil
			}
		}
	}

	return false, nil
}

func instructionProgram(raw Raw, instruction Raw) string {
	if id, ok := instruction.String("programId"); ok {
		return id
	}

	if idx, ok := instruction.Int64("programIdIndex"); ok && idx >= 0 {
		return accountKey(raw, int(idx))
	}

	return ""
}
