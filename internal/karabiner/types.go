package karabiner

// Manipulator and condition type discriminators.
const (
	TypeBasic      = "basic"
	TypeVariableIf = "variable_if"
)

// Rule is one entry of complex_modifications.rules.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`
}

// Manipulator binds a trigger to actions under a set of conditions.
type Manipulator struct {
	Description  string      `json:"description,omitempty"`
	Type         string      `json:"type"`
	From         From        `json:"from"`
	To           []To        `json:"to,omitempty"`
	ToAfterKeyUp []To        `json:"to_after_key_up,omitempty"`
	ToIfAlone    []To        `json:"to_if_alone,omitempty"`
	Conditions   []Condition `json:"conditions,omitempty"`
}

// From is the trigger side of a manipulator.
type From struct {
	KeyCode   string         `json:"key_code"`
	Modifiers *FromModifiers `json:"modifiers,omitempty"`
}

// FromModifiers constrains which modifiers must or may be held for a trigger.
type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty"`
}

// To is a single output event. Exactly one of KeyCode, ShellCommand or
// SetVariable is set.
type To struct {
	KeyCode      string       `json:"key_code,omitempty"`
	Modifiers    []string     `json:"modifiers,omitempty"`
	ShellCommand string       `json:"shell_command,omitempty"`
	SetVariable  *SetVariable `json:"set_variable,omitempty"`
}

// SetVariable mutates an engine-owned variable.
type SetVariable struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Condition guards a manipulator on the value of an engine variable.
type Condition struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// VariableIf returns a variable_if condition.
func VariableIf(name string, value int) Condition {
	return Condition{Type: TypeVariableIf, Name: name, Value: value}
}

// SetVar returns an output event that assigns value to the named variable.
func SetVar(name string, value int) To {
	return To{SetVariable: &SetVariable{Name: name, Value: value}}
}

// KeyPress returns an output event that sends code with optional modifiers.
func KeyPress(code string, modifiers ...string) To {
	return To{KeyCode: code, Modifiers: modifiers}
}

// Shell returns an output event that runs a shell command.
func Shell(command string) To {
	return To{ShellCommand: command}
}
