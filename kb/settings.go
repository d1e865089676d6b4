package kb

import "fmt"

// PromptTemplate 预置系统提示词
type PromptTemplate struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// DefaultPromptTemplates 默认提示词模板
var DefaultPromptTemplates = []PromptTemplate{
	{Label: "专业助手", Value: "你是一个专业的文档知识库助手，请基于提供的上下文信息准确回答用户问题。"},
	{Label: "友好助手", Value: "你是一个友好、耐心的AI助手，请用简洁易懂的语言回答用户的问题，确保回答基于文档内容。"},
}

// Settings 模型参数
type Settings struct {
	Temperature  float64          `toml:"temperature"`
	TopP         float64          `toml:"top_p"`
	SystemPrompt string           `toml:"system_prompt"`
	Templates    []PromptTemplate `toml:"templates"`
}

// DefaultSettings 返回默认参数
func DefaultSettings() *Settings {
	return &Settings{
		Temperature:  0.7,
		TopP:         0.9,
		SystemPrompt: DefaultPromptTemplates[0].Value,
		Templates:    append([]PromptTemplate(nil), DefaultPromptTemplates...),
	}
}

func checkUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %.2f out of [0, 1]: %w", name, v, ErrInvalidSetting)
	}
	return nil
}

// SetTemperature 设置 temperature，取值 [0, 1]
func (s *Settings) SetTemperature(v float64) error {
	if err := checkUnit("temperature", v); err != nil {
		return err
	}
	s.Temperature = v
	return nil
}

// SetTopP 设置 top_p，取值 [0, 1]
func (s *Settings) SetTopP(v float64) error {
	if err := checkUnit("top_p", v); err != nil {
		return err
	}
	s.TopP = v
	return nil
}

// ApplyTemplate 用指定模板替换系统提示词
func (s *Settings) ApplyTemplate(label string) error {
	for _, t := range s.Templates {
		if t.Label == label {
			s.SystemPrompt = t.Value
			return nil
		}
	}
	return fmt.Errorf("prompt template %q: %w", label, ErrNotFound)
}

// Validate 检查所有参数
func (s *Settings) Validate() error {
	if err := checkUnit("temperature", s.Temperature); err != nil {
		return err
	}
	return checkUnit("top_p", s.TopP)
}
