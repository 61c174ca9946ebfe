package spline

type (
	Polynomial1D = Polynomial[Vec1]
	Polynomial2D = Polynomial[Vec2]
	Polynomial3D = Polynomial[Vec3]
	Polynomial4D = Polynomial[Vec4]

	BezierCubic1D = BezierCubic[Vec1]
	BezierCubic2D = BezierCubic[Vec2]
	BezierCubic3D = BezierCubic[Vec3]
	BezierCubic4D = BezierCubic[Vec4]

	BezierQuad1D = BezierQuad[Vec1]
	BezierQuad2D = BezierQuad[Vec2]
	BezierQuad3D = BezierQuad[Vec3]
	BezierQuad4D = BezierQuad[Vec4]

	HermiteCubic1D = HermiteCubic[Vec1]
	HermiteCubic2D = HermiteCubic[Vec2]
	HermiteCubic3D = HermiteCubic[Vec3]
	HermiteCubic4D = HermiteCubic[Vec4]

	CatRomCubic1D = CatRomCubic[Vec1]
	CatRomCubic2D = CatRomCubic[Vec2]
	CatRomCubic3D = CatRomCubic[Vec3]
	CatRomCubic4D = CatRomCubic[Vec4]

	UBSCubic1D = UBSCubic[Vec1]
	UBSCubic2D = UBSCubic[Vec2]
	UBSCubic3D = UBSCubic[Vec3]
	UBSCubic4D = UBSCubic[Vec4]

	UBSQuad1D = UBSQuad[Vec1]
	UBSQuad2D = UBSQuad[Vec2]
	UBSQuad3D = UBSQuad[Vec3]
	UBSQuad4D = UBSQuad[Vec4]

	NUCatRomCubic1D = NUCatRomCubic[Vec1]
	NUCatRomCubic2D = NUCatRomCubic[Vec2]
	NUCatRomCubic3D = NUCatRomCubic[Vec3]
	NUCatRomCubic4D = NUCatRomCubic[Vec4]

	NUHermiteCubic1D = NUHermiteCubic[Vec1]
	NUHermiteCubic2D = NUHermiteCubic[Vec2]
	NUHermiteCubic3D = NUHermiteCubic[Vec3]
	NUHermiteCubic4D = NUHermiteCubic[Vec4]

	CatRom1DSpline = CatRomSpline[Vec1]
	CatRom2DSpline = CatRomSpline[Vec2]
	CatRom3DSpline = CatRomSpline[Vec3]
	CatRom4DSpline = CatRomSpline[Vec4]

	NURBS1D = NURBS[Vec1]
	NURBS2D = NURBS[Vec2]
	NURBS3D = NURBS[Vec3]
	NURBS4D = NURBS[Vec4]
)
