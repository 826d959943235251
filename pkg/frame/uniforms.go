package frame

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-lattice/pkg/camera"
	"github.com/leterax/go-lattice/pkg/uniform"
)

// CameraUniforms declares the per-frame uniforms the raymarch shader reads.
// Angles and the field of view are converted to radians.
func CameraUniforms(cam *camera.Camera, now float64) []uniform.Uniform {
	yaw, pitch, roll := cam.Orientation()
	near, far := cam.ClipPlanes()

	return []uniform.Uniform{
		{Name: "TIME", Value: uniform.Float(now)},
		{Name: "RESOLUTION", Value: uniform.Vec2(cam.Resolution())},

		{Name: "yaw", Value: uniform.Float(mgl32.DegToRad(yaw))},
		{Name: "pitch", Value: uniform.Float(mgl32.DegToRad(pitch))},
		{Name: "roll", Value: uniform.Float(mgl32.DegToRad(roll))},

		{Name: "camera_front", Value: uniform.Vec3(cam.FrontVector())},
		{Name: "camera_up", Value: uniform.Vec3(cam.UpVector())},
		{Name: "camera_right", Value: uniform.Vec3(cam.RightVector())},
		{Name: "camera_position", Value: uniform.Vec3(cam.Position())},

		{Name: "fov", Value: uniform.Float(mgl32.DegToRad(cam.FOV()))},
		{Name: "near", Value: uniform.Float(near)},
		{Name: "far", Value: uniform.Float(far)},

		{Name: "view", Value: uniform.Mat4(cam.ViewMatrix())},
		{Name: "projection", Value: uniform.Mat4(cam.ProjectionMatrix())},
	}
}
