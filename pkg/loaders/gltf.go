package loaders

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// Model is the result of loading an asset file: a list of meshes and
// the materials they reference.
type Model struct {
	Meshes    []*geometry.Geometry
	Materials []*material.Material
}

// LoadGLTF loads a glTF or GLB asset into meshes and materials. Each
// triangle primitive becomes one Geometry carrying the primitive's
// material; PBR base color maps to the diffuse component and the
// emissive factor is carried over. Texture files referenced by the
// asset are loaded from the asset's directory; a missing or broken
// texture leaves the material untextured.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", path, err)
	}

	model := &Model{}
	materials := convertMaterials(doc, filepath.Dir(path))
	model.Materials = materials

	defaultMat := material.NewMaterial(
		core.Vec3{}, core.NewVec3(1, 1, 1), core.Vec3{}, 1, core.Vec3{})

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			mat := defaultMat
			if prim.Material != nil && *prim.Material < len(materials) {
				mat = materials[*prim.Material]
			}
			mesh, err := convertPrimitive(doc, prim, mat)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
			if mesh != nil {
				model.Meshes = append(model.Meshes, mesh)
			}
		}
	}
	return model, nil
}

// convertMaterials maps glTF PBR materials onto Phong materials
func convertMaterials(doc *gltf.Document, dir string) []*material.Material {
	materials := make([]*material.Material, len(doc.Materials))
	for i, src := range doc.Materials {
		diffuse := core.NewVec3(1, 1, 1)
		textureFile := ""
		if pbr := src.PBRMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor != nil {
				diffuse = core.NewVec3(
					float64(pbr.BaseColorFactor[0]),
					float64(pbr.BaseColorFactor[1]),
					float64(pbr.BaseColorFactor[2]))
			}
			if pbr.BaseColorTexture != nil {
				textureFile = textureURI(doc, int(pbr.BaseColorTexture.Index))
			}
		}
		emissive := core.NewVec3(
			float64(src.EmissiveFactor[0]),
			float64(src.EmissiveFactor[1]),
			float64(src.EmissiveFactor[2]))

		mat := material.NewMaterial(core.Vec3{}, diffuse, core.Vec3{}, 1, emissive)
		if textureFile != "" {
			mat.TextureFile = filepath.Join(dir, textureFile)
			if tex, err := LoadTexture(mat.TextureFile); err == nil {
				mat.SetTexture(tex)
			}
		}
		materials[i] = mat
	}
	return materials
}

func textureURI(doc *gltf.Document, index int) string {
	if index < 0 || index >= len(doc.Textures) {
		return ""
	}
	tex := doc.Textures[index]
	if tex.Source == nil || int(*tex.Source) >= len(doc.Images) {
		return ""
	}
	return doc.Images[*tex.Source].URI
}

// convertPrimitive builds a Geometry from one triangle primitive
func convertPrimitive(doc *gltf.Document, prim *gltf.Primitive, mat *material.Material) (*geometry.Geometry, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}
	positions, err := readVec3Accessor(doc, int(posIdx))
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	var normals []core.Vec3
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = readVec3Accessor(doc, int(normIdx))
		if err != nil {
			return nil, fmt.Errorf("read normals: %w", err)
		}
	}

	var uvs []core.Vec2
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = readVec2Accessor(doc, int(uvIdx))
		if err != nil {
			return nil, fmt.Errorf("read uvs: %w", err)
		}
	}

	if len(uvs) != len(positions) {
		uvs = nil
	}

	g := geometry.NewGeometry()
	for i, p := range positions {
		g.AddVertex(p)
		if uvs != nil {
			g.AddTextureCoordinates(uvs[i])
		}
	}

	var indices []int
	if prim.Indices != nil {
		indices, err = readIndices(doc, int(*prim.Indices))
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]int, len(positions))
		for i := range indices {
			indices[i] = i
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i1, i2, i3 := indices[i], indices[i+1], indices[i+2]
		var triNormals *[3]core.Vec3
		if len(normals) > 0 && i1 < len(normals) && i2 < len(normals) && i3 < len(normals) {
			triNormals = &[3]core.Vec3{normals[i1], normals[i2], normals[i3]}
		}
		g.AddTriangle(i1, i2, i3, mat, triNormals)
	}
	return g, nil
}

// readVec3Accessor reads Vec3 data from a glTF accessor
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]core.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", accessor.Type, accessor.ComponentType)
	}
	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]core.Vec3, accessor.Count)
	for i := range result {
		offset := i * stride
		result[i] = core.NewVec3(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])),
			float64(readFloat32(data[offset+8:])))
	}
	return result, nil
}

// readVec2Accessor reads Vec2 data from a glTF accessor
func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]core.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC2, got %v/%v", accessor.Type, accessor.ComponentType)
	}
	data, stride, err := accessorBytes(doc, accessor, 8)
	if err != nil {
		return nil, err
	}

	result := make([]core.Vec2, accessor.Count)
	for i := range result {
		offset := i * stride
		result[i] = core.NewVec2(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])))
	}
	return result, nil
}

// readIndices reads scalar index data from a glTF accessor
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := i * stride
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

// accessorBytes returns the raw bytes and element stride of an accessor
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elementSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := int(view.ByteStride)
	if stride == 0 {
		stride = elementSize
	}

	start := int(view.ByteOffset) + int(accessor.ByteOffset)
	end := start + (int(accessor.Count)-1)*stride + elementSize
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor out of buffer bounds")
	}
	return buffer.Data[start:], stride, nil
}

// readFloat32 reads a little-endian float32
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
