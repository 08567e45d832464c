package scenes

import "github.com/automoto/bastion/components"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Input() *components.InputData
}
