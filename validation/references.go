package validation

import "github.com/jtejido/elft"

// references are the exemplar images made into reference templates, grouped
// by subject. Image identifiers follow the order of images within a set.
var references = []ImageSet{
	reference("00002644",
		exemplar("00002644_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002644_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002644_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002644_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002644_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002644_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002644_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002644_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002644_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002644_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
	),
	reference("00002325",
		exemplar("00002325_R_500_slap_01_378x539.gray", 378, 539, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002325_R_500_slap_10_256x451.gray", 256, 451, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002325_R_500_slap_09_286x427.gray", 286, 427, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002325_R_500_slap_08_296x458.gray", 296, 458, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002325_R_500_slap_05_256x422.gray", 256, 422, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002325_R_500_slap_03_307x500.gray", 307, 500, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002325_R_500_slap_06_356x566.gray", 356, 566, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002325_R_500_slap_02_281x507.gray", 281, 507, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002325_R_500_slap_04_274x464.gray", 274, 464, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002325_R_500_slap_07_281x476.gray", 281, 476, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002449",
		exemplar("00002449_A_500_roll_01_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightThumb),
		exemplar("00002449_A_500_roll_06_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftThumb),
		exemplar("00002449_A_500_roll_07_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftIndex),
		exemplar("00002449_A_500_roll_09_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftRing),
		exemplar("00002449_A_500_roll_08_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftMiddle),
		exemplar("00002449_A_500_roll_10_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftLittle),
		exemplar("00002449_A_500_roll_02_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightIndex),
		exemplar("00002449_A_500_roll_05_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightLittle),
		exemplar("00002449_A_500_roll_04_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightRing),
		exemplar("00002449_A_500_roll_03_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightMiddle),
	),
	reference("00002606",
		exemplar("00002606_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002606_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002606_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002606_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002606_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002606_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002606_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002606_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002606_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002606_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
	),
	reference("00002327",
		exemplar("00002327_R_500_slap_10_256x432.gray", 256, 432, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002327_R_500_slap_06_318x561.gray", 318, 561, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002327_R_500_slap_09_267x498.gray", 267, 498, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002327_R_500_slap_02_269x490.gray", 269, 490, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002327_R_500_slap_04_265x516.gray", 265, 516, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002327_R_500_slap_05_256x438.gray", 256, 438, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002327_R_500_slap_08_271x522.gray", 271, 522, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002327_R_500_slap_07_301x478.gray", 301, 478, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002327_R_500_slap_01_360x598.gray", 360, 598, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002327_R_500_slap_03_263x493.gray", 263, 493, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
	),
	reference("00002634",
		exemplar("00002634_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002634_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002634_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002634_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002634_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002634_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002634_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002634_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002634_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002634_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002334",
		exemplar("00002334_R_500_slap_02_285x422.gray", 285, 422, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002334_R_500_slap_09_256x400.gray", 256, 400, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002334_R_500_slap_04_256x420.gray", 256, 420, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002334_R_500_slap_08_258x412.gray", 258, 412, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002334_R_500_slap_06_350x532.gray", 350, 532, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002334_R_500_slap_05_256x317.gray", 256, 317, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002334_R_500_slap_01_353x503.gray", 353, 503, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002334_R_500_slap_07_266x412.gray", 266, 412, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002334_R_500_slap_10_256x350.gray", 256, 350, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002334_R_500_slap_03_278x435.gray", 278, 435, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
	),
	reference("00002447",
		exemplar("00002447_A_500_roll_05_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightLittle),
		exemplar("00002447_A_500_roll_02_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightIndex),
		exemplar("00002447_A_500_roll_10_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftLittle),
		exemplar("00002447_A_500_roll_03_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightMiddle),
		exemplar("00002447_A_500_roll_04_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightRing),
		exemplar("00002447_A_500_roll_09_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftRing),
		exemplar("00002447_A_500_roll_08_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftMiddle),
		exemplar("00002447_A_500_roll_06_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftThumb),
		exemplar("00002447_A_500_roll_01_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightThumb),
		exemplar("00002447_A_500_roll_07_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftIndex),
	),
	reference("00002646",
		exemplar("00002646_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002646_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002646_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002646_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002646_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002646_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002646_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002646_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002646_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002646_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002650",
		exemplar("00002650_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002650_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002650_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002650_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002650_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002650_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002650_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002650_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002650_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002650_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002616",
		exemplar("00002616_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002616_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002616_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002616_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002616_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002616_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002616_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002616_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002616_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002616_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
	),
	reference("00002319",
		exemplar("00002319_R_500_slap_01_354x503.gray", 354, 503, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002319_R_500_slap_04_256x424.gray", 256, 424, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002319_R_500_slap_10_256x424.gray", 256, 424, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002319_R_500_slap_05_256x422.gray", 256, 422, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002319_R_500_slap_02_256x394.gray", 256, 394, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002319_R_500_slap_03_256x420.gray", 256, 420, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002319_R_500_slap_08_280x440.gray", 280, 440, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002319_R_500_slap_07_268x433.gray", 268, 433, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002319_R_500_slap_09_290x456.gray", 290, 456, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002319_R_500_slap_06_298x532.gray", 298, 532, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002624",
		exemplar("00002624_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002624_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002624_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002624_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002624_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002624_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002624_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002624_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002624_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002624_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002328",
		exemplar("00002328_R_500_slap_10_256x421.gray", 256, 421, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002328_R_500_slap_03_256x461.gray", 256, 461, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002328_R_500_slap_05_256x379.gray", 256, 379, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002328_R_500_slap_09_256x396.gray", 256, 396, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002328_R_500_slap_02_256x386.gray", 256, 386, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002328_R_500_slap_04_256x424.gray", 256, 424, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002328_R_500_slap_06_307x485.gray", 307, 485, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002328_R_500_slap_07_256x355.gray", 256, 355, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002328_R_500_slap_08_256x367.gray", 256, 367, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002328_R_500_slap_01_317x495.gray", 317, 495, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
	),
	reference("00002320",
		exemplar("00002320_R_500_slap_05_256x433.gray", 256, 433, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002320_R_500_slap_08_262x458.gray", 262, 458, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002320_R_500_slap_01_333x492.gray", 333, 492, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002320_R_500_slap_09_256x431.gray", 256, 431, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002320_R_500_slap_10_256x460.gray", 256, 460, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002320_R_500_slap_03_260x490.gray", 260, 490, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002320_R_500_slap_06_350x532.gray", 350, 532, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002320_R_500_slap_02_259x425.gray", 259, 425, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002320_R_500_slap_04_256x466.gray", 256, 466, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002320_R_500_slap_07_256x433.gray", 256, 433, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002357",
		exemplar("00002357_V_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002357_R_500_slap_13_2496x2560.gray", 2496, 2560, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
		exemplar("00002357_R_500_slap_09_293x399.gray", 293, 399, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002357_U_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002357_V_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002357_U_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002357_R_1000_slap_01_762x1016.gray", 762, 1016, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002357_A_500_roll_06_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftThumb),
		exemplar("00002357_A_500_roll_01_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightThumb),
		exemplar("00002357_R_500_slap_14_2496x2560.gray", 2496, 2560, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
		exemplar("00002357_V_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002357_R_500_slap_15_2496x2560.gray", 2496, 2560, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002357_R_1000_slap_05_512x675.gray", 512, 675, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002357_V_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002357_A_500_roll_07_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftIndex),
		exemplar("00002357_V_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002357_U_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002357_R_500_slap_05_256x338.gray", 256, 338, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002357_V_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002357_R_1000_slap_07_559x766.gray", 559, 766, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002357_R_1000_slap_09_587x798.gray", 587, 798, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002357_V_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002357_R_500_slap_07_280x383.gray", 280, 383, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002357_R_1000_slap_06_841x1012.gray", 841, 1012, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002357_V_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002357_V_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002357_V_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002357_A_500_roll_09_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftRing),
		exemplar("00002357_U_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002357_R_1000_slap_08_559x808.gray", 559, 808, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002357_R_500_slap_08_274x403.gray", 274, 403, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002357_R_500_slap_04_274x413.gray", 274, 413, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002357_R_1000_slap_10_512x742.gray", 512, 742, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002357_U_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002357_R_1000_slap_03_539x818.gray", 539, 818, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002357_R_500_slap_03_268x409.gray", 268, 409, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002357_R_1000_slap_02_555x782.gray", 555, 782, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002357_A_500_roll_08_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftMiddle),
		exemplar("00002357_R_1000_slap_04_548x825.gray", 548, 825, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002357_R_500_slap_10_256x371.gray", 256, 371, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002357_R_500_slap_02_278x389.gray", 278, 389, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002357_R_500_slap_06_409x506.gray", 409, 506, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002357_U_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002357_A_500_roll_05_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightLittle),
		exemplar("00002357_A_500_roll_02_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightIndex),
		exemplar("00002357_U_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002357_U_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002357_A_500_roll_10_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftLittle),
		exemplar("00002357_R_500_slap_01_379x507.gray", 379, 507, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002357_U_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002357_U_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002357_A_500_roll_03_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightMiddle),
		exemplar("00002357_A_500_roll_04_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightRing),
	),
	reference("00002610",
		exemplar("00002610_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002610_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002610_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002610_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002610_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002610_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002610_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002610_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002610_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002610_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
	),
	reference("00002611",
		exemplar("00002611_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002611_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002611_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002611_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002611_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002611_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002611_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002611_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002611_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002611_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
	),
	reference("00002625",
		exemplar("00002625_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002625_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002625_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002625_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002625_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002625_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002625_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002625_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002625_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002625_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
	),
	reference("00002329",
		exemplar("00002329_R_500_slap_05_274x489.gray", 274, 489, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002329_R_500_slap_10_317x406.gray", 317, 406, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002329_R_500_slap_08_301x485.gray", 301, 485, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002329_R_500_slap_09_339x510.gray", 339, 510, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002329_R_500_slap_02_264x444.gray", 264, 444, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002329_R_500_slap_06_412x609.gray", 412, 609, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002329_R_500_slap_07_290x476.gray", 290, 476, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002329_R_500_slap_03_266x488.gray", 266, 488, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002329_R_500_slap_01_368x551.gray", 368, 551, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002329_R_500_slap_04_316x490.gray", 316, 490, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
	),
	reference("00002317",
		exemplar("00002317_R_500_slap_09_270x394.gray", 270, 394, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002317_R_500_slap_07_275x449.gray", 275, 449, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002317_R_500_slap_10_257x437.gray", 257, 437, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002317_R_500_slap_01_371x604.gray", 371, 604, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002317_R_500_slap_06_366x473.gray", 366, 473, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002317_R_500_slap_04_279x431.gray", 279, 431, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002317_R_500_slap_08_265x416.gray", 265, 416, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002317_R_500_slap_02_256x370.gray", 256, 370, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002317_R_500_slap_05_256x404.gray", 256, 404, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002317_R_500_slap_03_256x413.gray", 256, 413, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
	),
	reference("00002640",
		exemplar("00002640_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002640_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002640_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002640_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002640_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002640_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002640_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002640_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002640_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002640_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002313",
		exemplar("00002313_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002313_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
		exemplar("00002313_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
	),
	reference("00002315",
		exemplar("00002315_R_500_slap_10_256x409.gray", 256, 409, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002315_R_500_slap_09_262x429.gray", 262, 429, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002315_R_500_slap_04_256x435.gray", 256, 435, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002315_R_500_slap_08_277x459.gray", 277, 459, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002315_R_500_slap_03_288x458.gray", 288, 458, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002315_R_500_slap_06_341x575.gray", 341, 575, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002315_R_500_slap_02_283x443.gray", 283, 443, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002315_R_500_slap_01_310x588.gray", 310, 588, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002315_R_500_slap_05_256x411.gray", 256, 411, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002315_R_500_slap_07_319x485.gray", 319, 485, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002641",
		exemplar("00002641_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002641_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002641_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002641_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002641_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002641_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002641_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002641_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002641_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002641_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002332",
		exemplar("00002332_R_500_slap_05_256x381.gray", 256, 381, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002332_R_500_slap_08_284x422.gray", 284, 422, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002332_R_500_slap_01_320x562.gray", 320, 562, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002332_R_500_slap_02_256x411.gray", 256, 411, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002332_R_500_slap_04_256x390.gray", 256, 390, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002332_R_500_slap_06_315x512.gray", 315, 512, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002332_R_500_slap_07_256x428.gray", 256, 428, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002332_R_500_slap_10_256x366.gray", 256, 366, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002332_R_500_slap_03_256x382.gray", 256, 382, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002332_R_500_slap_09_256x429.gray", 256, 429, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
	),
	reference("00002651",
		exemplar("00002651_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002651_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002651_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002651_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002651_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002651_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002651_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002651_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002651_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002651_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002633",
		exemplar("00002633_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002633_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002633_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002633_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002633_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002633_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002633_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002633_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002633_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002633_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002302",
		exemplar("00002302_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002302_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
		exemplar("00002302_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
	),
	reference("00002337",
		exemplar("00002337_R_500_slap_05_256x438.gray", 256, 438, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002337_R_500_slap_09_256x487.gray", 256, 487, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002337_R_500_slap_03_298x471.gray", 298, 471, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002337_R_500_slap_08_280x486.gray", 280, 486, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002337_R_500_slap_06_385x607.gray", 385, 607, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002337_R_500_slap_04_276x464.gray", 276, 464, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002337_R_500_slap_01_386x581.gray", 386, 581, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002337_R_500_slap_10_256x441.gray", 256, 441, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002337_R_500_slap_07_258x476.gray", 258, 476, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002337_R_500_slap_02_285x469.gray", 285, 469, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
	),
	reference("00002454",
		exemplar("00002454_A_500_roll_07_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftIndex),
		exemplar("00002454_A_500_roll_06_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftThumb),
		exemplar("00002454_A_500_roll_01_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightThumb),
		exemplar("00002454_A_500_roll_08_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftMiddle),
		exemplar("00002454_A_500_roll_09_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftRing),
		exemplar("00002454_A_500_roll_03_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightMiddle),
		exemplar("00002454_A_500_roll_04_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightRing),
		exemplar("00002454_A_500_roll_10_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftLittle),
		exemplar("00002454_A_500_roll_05_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightLittle),
		exemplar("00002454_A_500_roll_02_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightIndex),
	),
	reference("00002321",
		exemplar("00002321_R_500_slap_04_273x424.gray", 273, 424, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002321_R_500_slap_05_256x403.gray", 256, 403, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002321_R_500_slap_03_298x441.gray", 298, 441, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002321_R_500_slap_02_277x422.gray", 277, 422, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002321_R_500_slap_06_370x551.gray", 370, 551, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002321_R_500_slap_01_364x553.gray", 364, 553, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002321_R_500_slap_07_256x399.gray", 256, 399, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002321_R_500_slap_08_268x431.gray", 268, 431, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002321_R_500_slap_09_256x406.gray", 256, 406, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002321_R_500_slap_10_256x379.gray", 256, 379, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
	),
	reference("00002314",
		exemplar("00002314_R_500_slap_08_256x445.gray", 256, 445, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002314_R_500_slap_05_256x384.gray", 256, 384, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002314_R_500_slap_03_256x393.gray", 256, 393, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002314_R_500_slap_04_256x470.gray", 256, 470, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002314_R_500_slap_02_256x373.gray", 256, 373, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002314_R_500_slap_01_318x518.gray", 318, 518, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002314_R_500_slap_06_297x550.gray", 297, 550, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002314_R_500_slap_10_256x417.gray", 256, 417, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002314_R_500_slap_07_256x459.gray", 256, 459, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002314_R_500_slap_09_256x466.gray", 256, 466, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
	),
	reference("00002330",
		exemplar("00002330_R_500_slap_08_275x500.gray", 275, 500, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002330_R_500_slap_02_256x473.gray", 256, 473, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002330_R_500_slap_06_356x614.gray", 356, 614, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002330_R_500_slap_10_256x428.gray", 256, 428, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002330_R_500_slap_07_261x494.gray", 261, 494, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002330_R_500_slap_09_259x506.gray", 259, 506, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002330_R_500_slap_04_256x489.gray", 256, 489, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002330_R_500_slap_05_256x437.gray", 256, 437, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002330_R_500_slap_03_256x457.gray", 256, 457, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002330_R_500_slap_01_351x569.gray", 351, 569, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
	),
	reference("00002326",
		exemplar("00002326_R_500_slap_09_407x480.gray", 407, 480, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002326_R_500_slap_01_414x595.gray", 414, 595, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002326_R_500_slap_07_336x567.gray", 336, 567, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002326_R_500_slap_02_372x471.gray", 372, 471, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002326_R_500_slap_08_408x457.gray", 408, 457, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002326_R_500_slap_03_384x471.gray", 384, 471, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002326_R_500_slap_06_412x565.gray", 412, 565, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002326_R_500_slap_04_368x475.gray", 368, 475, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002326_R_500_slap_05_299x384.gray", 299, 384, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002326_R_500_slap_10_318x422.gray", 318, 422, 500, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
	),
	reference("00002303",
		exemplar("00002303_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002303_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
		exemplar("00002303_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
	),
	reference("00002304",
		exemplar("00002304_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
		exemplar("00002304_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
		exemplar("00002304_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
	),
	reference("00002448",
		exemplar("00002448_A_500_roll_07_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftIndex),
		exemplar("00002448_A_500_roll_01_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightThumb),
		exemplar("00002448_A_500_roll_06_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftThumb),
		exemplar("00002448_A_500_roll_04_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightRing),
		exemplar("00002448_A_500_roll_03_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightMiddle),
		exemplar("00002448_A_500_roll_10_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftLittle),
		exemplar("00002448_A_500_roll_02_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightIndex),
		exemplar("00002448_A_500_roll_05_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightLittle),
		exemplar("00002448_A_500_roll_08_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftMiddle),
		exemplar("00002448_A_500_roll_09_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftRing),
	),
	reference("00002645",
		exemplar("00002645_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002645_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002645_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002645_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002645_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002645_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002645_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002645_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002645_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002645_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
	),
	reference("00002649",
		exemplar("00002649_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002649_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002649_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002649_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002649_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002649_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002649_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002649_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002649_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002649_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
	),
	reference("00002455",
		exemplar("00002455_A_500_roll_06_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftThumb),
		exemplar("00002455_A_500_roll_01_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightThumb),
		exemplar("00002455_A_500_roll_07_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftIndex),
		exemplar("00002455_A_500_roll_10_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftLittle),
		exemplar("00002455_A_500_roll_05_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightLittle),
		exemplar("00002455_A_500_roll_02_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightIndex),
		exemplar("00002455_A_500_roll_03_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightMiddle),
		exemplar("00002455_A_500_roll_04_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPRightRing),
		exemplar("00002455_A_500_roll_09_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftRing),
		exemplar("00002455_A_500_roll_08_512x512.gray", 512, 512, 500, elft.ImpressionRolledContactlessMoving, elft.FRCTOpticalDirect, elft.FRGPLeftMiddle),
	),
	reference("00002312",
		exemplar("00002312_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002312_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
		exemplar("00002312_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
	),
	reference("00002636",
		exemplar("00002636_V_500_roll_07_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002636_V_500_roll_01_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002636_V_500_roll_06_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002636_V_500_roll_04_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002636_V_500_roll_03_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002636_V_500_roll_02_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002636_V_500_roll_05_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002636_V_500_roll_10_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002636_V_500_roll_08_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002636_V_500_roll_09_800x750.gray", 800, 750, 500, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
	),
	reference("00002604",
		exemplar("00002604_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002604_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002604_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002604_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002604_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002604_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002604_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002604_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002604_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002604_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
	),
	reference("00002602",
		exemplar("00002602_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002602_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002602_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002602_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002602_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002602_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002602_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002602_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002602_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002602_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
	),
	reference("00002626",
		exemplar("00002626_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002626_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002626_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002626_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002626_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002626_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002626_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002626_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002626_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002626_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
	),
	reference("00002307",
		exemplar("00002307_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002307_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
		exemplar("00002307_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
	),
	reference("00002615",
		exemplar("00002615_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002615_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002615_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002615_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002615_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002615_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002615_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002615_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002615_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002615_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002621",
		exemplar("00002621_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002621_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002621_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002621_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002621_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002621_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002621_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002621_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002621_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002621_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
	),
	reference("00002614",
		exemplar("00002614_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002614_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002614_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002614_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002614_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002614_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002614_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002614_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002614_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002614_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
	),
	reference("00002612",
		exemplar("00002612_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002612_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002612_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002612_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002612_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002612_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002612_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002612_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
		exemplar("00002612_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002612_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
	),
	reference("00002596",
		exemplar("00002596_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002596_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002596_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002596_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002596_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002596_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002596_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002596_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002596_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002596_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002630",
		exemplar("00002630_U_1000_roll_04_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightRing),
		exemplar("00002630_U_1000_roll_03_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightMiddle),
		exemplar("00002630_U_1000_roll_02_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightIndex),
		exemplar("00002630_U_1000_roll_05_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightLittle),
		exemplar("00002630_U_1000_roll_10_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftLittle),
		exemplar("00002630_U_1000_roll_07_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftIndex),
		exemplar("00002630_U_1000_roll_08_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftMiddle),
		exemplar("00002630_U_1000_roll_09_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftRing),
		exemplar("00002630_U_1000_roll_01_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPRightThumb),
		exemplar("00002630_U_1000_roll_06_1600x1500.gray", 1600, 1500, 1000, elft.ImpressionRolledContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftThumb),
	),
	reference("00002310",
		exemplar("00002310_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
		exemplar("00002310_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
		exemplar("00002310_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
	),
	reference("00002306",
		exemplar("00002306_R_1000_slap_15_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightAndLeftThumbs),
		exemplar("00002306_R_1000_slap_14_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPLeftFour),
		exemplar("00002306_R_1000_slap_13_4992x5120.gray", 4992, 5120, 1000, elft.ImpressionPlainContact, elft.FRCTOpticalTIRBright, elft.FRGPRightFour),
	),
}
