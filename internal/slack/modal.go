// Package slack handles the two touchpoints with the chat platform: parsing
// modal submissions on the ingestion path and calling the notifier bot.
package slack

// The structures below are the slice of the block-action payload this system
// reads; everything else in the payload is ignored.

type Submission struct {
	Actions []Action `json:"actions"`
	View    View     `json:"view"`
}

type Action struct {
	Type     string `json:"type"`
	ActionID string `json:"action_id"`
}

type View struct {
	Blocks []Block              `json:"blocks"`
	State  map[string]BlockVals `json:"state_values"`
}

type Block struct {
	BlockID   string     `json:"block_id"`
	Accessory *Accessory `json:"accessory,omitempty"`
}

type Accessory struct {
	Type    string   `json:"type"`
	Options []Option `json:"options"`
}

type Option struct {
	Text  Text   `json:"text"`
	Value string `json:"value"`
}

type Text struct {
	Text string `json:"text"`
}

// BlockVals maps action IDs (question IDs) to the user's selection within one
// block.
type BlockVals map[string]Selected

type Selected struct {
	SelectedOption *Option `json:"selected_option"`
}

// unansweredLabel is recorded when a select was left untouched.
const unansweredLabel = "N/A"

// ParseSubmission resolves each question's selected option value back to its
// display text via the block's own option list, keyed by question ID. A block
// with no selection maps to "N/A". Ordering is left to the caller, which lays
// the answers out in catalog column order.
func ParseSubmission(sub Submission) map[string]string {
	optionsByBlock := make(map[string][]Option)
	for _, block := range sub.View.Blocks {
		if block.Accessory != nil && block.Accessory.Type == "static_select" {
			optionsByBlock[block.BlockID] = block.Accessory.Options
		}
	}

	answers := make(map[string]string)
	for blockID, vals := range sub.View.State {
		for questionID, sel := range vals {
			label := unansweredLabel
			if sel.SelectedOption != nil {
				for _, opt := range optionsByBlock[blockID] {
					if opt.Value == sel.SelectedOption.Value {
						label = opt.Text.Text
						break
					}
				}
			}
			answers[questionID] = label
		}
	}
	return answers
}

// IsRecordSubmit reports whether the payload is the final "record my day"
// button press rather than an intermediate select interaction.
func IsRecordSubmit(sub Submission) bool {
	for _, action := range sub.Actions {
		if action.Type == "button" && action.ActionID == "record_day" {
			return true
		}
	}
	return false
}
