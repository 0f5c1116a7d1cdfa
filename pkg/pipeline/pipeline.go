/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline.go
Description: Adaptive decoding pipeline for the Akaylee Inspector. Orchestrates
the full block recovery sequence: envelope parsing, format tag validation,
size-hint decoding, MessagePack re-encoding, the decompression waterfall and
the layered interpretation chain (decode, partial recovery, text, profile).
Failures are block-local except for structural defects, which abort the batch.
*/

package pipeline

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-inspector/pkg/decompress"
	"github.com/kleascm/akaylee-inspector/pkg/envelope"
	"github.com/kleascm/akaylee-inspector/pkg/interfaces"
	"github.com/kleascm/akaylee-inspector/pkg/msgvalue"
	"github.com/kleascm/akaylee-inspector/pkg/profile"
	"github.com/kleascm/akaylee-inspector/pkg/sizehint"
)

// Interpretation outcome labels reported per block.
const (
	OutcomeEmpty     = "empty"
	OutcomeDecoded   = "decoded"
	OutcomeRecovered = "recovered"
	OutcomeText      = "text"
	OutcomeProfiled  = "profiled"
	OutcomeFailed    = "decompression-failed"
)

// BlockResult is the fully processed form of one envelope block
type BlockResult struct {
	ID           string      `json:"id"`            // Unique result identifier
	Index        int         `json:"index"`         // Position in the envelope order
	FormatTag    int         `json:"format_tag"`    // Extension tag from the header descriptor
	SizeHint     int         `json:"size_hint"`     // Advisory uncompressed size estimate
	HintRule     string      `json:"hint_rule"`     // Size-hint rule that matched
	Strategy     int         `json:"strategy"`      // Winning decompression strategy, 0 if none applied
	HeaderLen    int         `json:"header_len"`    // Raw header byte count
	PayloadLen   int         `json:"payload_len"`   // Raw payload byte count
	DecodedLen   int         `json:"decoded_len"`   // Decompressed byte count
	Outcome      string      `json:"outcome"`       // Interpretation outcome label
	Value        interface{} `json:"value"`         // Recovered document value or diagnostic map
	Reencoded    []byte      `json:"-"`             // Canonical MessagePack form of the block
	Decompressed []byte      `json:"-"`             // Decompressed payload bytes
}

// Pipeline runs the adaptive decoding sequence over capture documents
type Pipeline struct {
	observer interfaces.Observer
}

// New creates a pipeline. A nil observer disables diagnostics.
func New(observer interfaces.Observer) *Pipeline {
	if observer == nil {
		observer = interfaces.NopObserver{}
	}
	return &Pipeline{observer: observer}
}

// ProcessDocument parses the capture document and processes every block in
// envelope order. Structural defects, including an unsupported format tag on
// any block, fail the whole batch; everything else degrades per block.
func (p *Pipeline) ProcessDocument(document string) ([]BlockResult, error) {
	blocks, err := envelope.Parse(document)
	if err != nil {
		p.observer.Error("envelope parsing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	p.observer.Info("envelope parsed", map[string]interface{}{
		"blocks": len(blocks),
	})

	return p.ProcessBlocks(blocks)
}

// ProcessBlocks validates the format tags and processes each block. Results
// preserve envelope order; indexes are assigned from that order.
func (p *Pipeline) ProcessBlocks(blocks []envelope.Block) ([]BlockResult, error) {
	for i, b := range blocks {
		if b.FormatTag != envelope.SupportedTag {
			p.observer.Error("unsupported format tag", map[string]interface{}{
				"block":    i,
				"tag":      b.FormatTag,
				"expected": envelope.SupportedTag,
			})
			return nil, envelope.NewStructuralError(
				"unsupported format tag %d on block %d, only tag %d is supported",
				b.FormatTag, i, envelope.SupportedTag)
		}
	}

	results := make([]BlockResult, 0, len(blocks))
	for i, b := range blocks {
		result, err := p.processBlock(i, b)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// processBlock runs one block through hint decoding, re-encoding, the
// decompression waterfall and the interpretation chain.
func (p *Pipeline) processBlock(index int, b envelope.Block) (BlockResult, error) {
	result := BlockResult{
		ID:         uuid.New().String(),
		Index:      index,
		FormatTag:  b.FormatTag,
		HeaderLen:  len(b.Header),
		PayloadLen: len(b.Payload),
	}

	result.SizeHint, result.HintRule = sizehint.DecodeWithRule(b.Header)

	reencoded, err := envelope.Reencode(b)
	if err != nil {
		return BlockResult{}, envelope.NewStructuralError(
			"failed to re-encode block %d: %v", index, err)
	}
	result.Reencoded = reencoded

	decompressed, strategy, ok := decompress.Decompress(b.Payload, result.SizeHint)
	if !ok {
		// Block-local failure: record a diagnostic value, keep the batch going
		p.observer.Warning("all decompression strategies failed", map[string]interface{}{
			"block":       index,
			"size_hint":   result.SizeHint,
			"payload_len": len(b.Payload),
		})
		result.Outcome = OutcomeFailed
		result.Value = map[string]interface{}{
			"error":       "all decompression strategies failed",
			"size_hint":   result.SizeHint,
			"payload_len": len(b.Payload),
		}
		return result, nil
	}

	result.Strategy = strategy
	result.Decompressed = decompressed
	result.DecodedLen = len(decompressed)

	p.observer.Debug("block decompressed", map[string]interface{}{
		"block":       index,
		"strategy":    strategy,
		"decoded_len": len(decompressed),
	})

	result.Value, result.Outcome = p.interpret(index, decompressed)
	return result, nil
}

// interpret runs the layered interpretation chain over decompressed bytes:
// full decode, partial recovery, plain text, byte profile. The chain never
// fails; the last layer accepts anything.
func (p *Pipeline) interpret(index int, data []byte) (interface{}, string) {
	if len(data) == 0 {
		return nil, OutcomeEmpty
	}

	if v, err := msgvalue.Decode(data); err == nil {
		return msgvalue.PromoteRecordShape(v.ToJSON()), OutcomeDecoded
	}

	if recovered := msgvalue.RecoverStream(data); len(recovered) > 0 {
		p.observer.Warning("full decode failed, recovered partial values", map[string]interface{}{
			"block":  index,
			"values": len(recovered),
		})
		values := make([]interface{}, 0, len(recovered))
		for _, r := range recovered {
			values = append(values, map[string]interface{}{
				"offset": r.Offset,
				"value":  msgvalue.PromoteRecordShape(r.Value.ToJSON()),
			})
		}
		return map[string]interface{}{
			"partial":   true,
			"recovered": values,
		}, OutcomeRecovered
	}

	if utf8.Valid(data) {
		text := string(data)
		if looksLikeJSON(text) {
			var v interface{}
			if err := json.Unmarshal(data, &v); err == nil {
				return v, OutcomeText
			}
		}
		return text, OutcomeText
	}

	p.observer.Warning("payload not decodable, profiling byte distribution", map[string]interface{}{
		"block":  index,
		"length": len(data),
	})
	return profile.Profile(data).Describe(), OutcomeProfiled
}

// looksLikeJSON reports whether text plausibly carries a JSON document
func looksLikeJSON(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
