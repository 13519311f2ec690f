package validation

import "github.com/jtejido/elft"

// latents are the latent images made into probe templates. Every set holds a
// single 8 or 16 bit grayscale image of an unknown finger.
var latents = []ImageSet{
	latent("00002357_2B_X_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_1207x1131", 1207, 1131, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1G_L_L01_BP_S24_1200PPI_8BPC_1CH_LP04_1_978x889", 978, 889, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0239_IN_D800_1000PPI_8BPC_1CH_LP07_1_724x1080", 724, 1080, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0233_IN_D800_1044PPI_16BPC_1CH_LP03_1_1303x966", 1303, 966, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0232_IN_D800_1044PPI_16BPC_1CH_LP16_1_930x1044", 930, 1044, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_L_L01_BP_S24_1000PPI_8BPC_1CH_LP15_1_561x699", 561, 699, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0230_IN_D800_1000PPI_8BPC_1CH_LP07_1_883x965", 883, 965, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_R_L01_BP_S24_1000PPI_8BPC_1CH_LP07_1_572x478", 572, 478, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_110_WT_D800_1109PPI_16BPC_1CH_LP01_1_798x624", 798, 624, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1H_L_L01_BP_S24_1200PPI_8BPC_1CH_LP12_1_625x669", 625, 669, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L02_BP_S24_1000PPI_8BPC_1CH_LP05_1_649x812", 649, 812, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1D_R_L01_BP_S24_1000PPI_8BPC_1CH_LP03_1_742x1087", 742, 1087, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0240_IN_D800_1044PPI_16BPC_1CH_LP10_1_582x627", 582, 627, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_R_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_678x575", 678, 575, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1G_L_L01_BP_S24_1000PPI_8BPC_1CH_LP04_1_815x741", 815, 741, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1G_R_L01_BP_S24_1200PPI_8BPC_1CH_LP04_1_1097x976", 1097, 976, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_R_L01_BP_S24_1200PPI_8BPC_1CH_LP07_1_686x574", 686, 574, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L01_BP_S24_1000PPI_8BPC_1CH_LP02_1_1006x942", 1006, 942, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_110_WT_D800_1000PPI_8BPC_1CH_LP03_1_771x579", 771, 579, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_2B_X_L02_BP_S24_1000PPI_8BPC_1CH_LP06_1_899x699", 899, 699, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6A_X_210_BT_D800_1000PPI_8BPC_1CH_LP01_1_405x587", 405, 587, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1C_R_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_882x1003", 882, 1003, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_028_IN_D800_1109PPI_16BPC_1CH_LP03_1_1102x723", 1102, 723, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_L_L01_BP_S24_1200PPI_8BPC_1CH_LP13_1_662x688", 662, 688, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_110_WT_D800_1109PPI_16BPC_1CH_LP04_1_855x408", 855, 408, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_3_X_0239_IN_D800_1044PPI_16BPC_1CH_LP07_1_756x1128", 756, 1128, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_L_L01_BP_S24_1000PPI_8BPC_1CH_LP12_1_521x557", 521, 557, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_027_IN_D800_1000PPI_8BPC_1CH_LP05_1_615x622", 615, 622, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_5A_X_027_IN_D800_1000PPI_8BPC_1CH_LP02_1_824x750", 824, 750, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_6D_X_110_WT_D800_1000PPI_8BPC_1CH_LP04_1_771x368", 771, 368, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1E_L_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_792x1177", 792, 1177, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_L_L01_BP_S24_1000PPI_8BPC_1CH_LP11_1_494x474", 494, 474, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0240_IN_D800_1000PPI_8BPC_1CH_LP10_1_557x601", 557, 601, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0233_IN_D800_1000PPI_8BPC_1CH_LP03_1_1248x925", 1248, 925, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1G_R_L01_BP_S24_1200PPI_8BPC_1CH_LP05_1_1008x839", 1008, 839, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_028_IN_D800_1000PPI_8BPC_1CH_LP01_1_907x713", 907, 713, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_R_L01_BP_S24_1000PPI_8BPC_1CH_LP08_1_533x565", 533, 565, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_L_L01_BP_S24_1000PPI_8BPC_1CH_LP13_1_552x573", 552, 573, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0230_IN_D800_1000PPI_8BPC_1CH_LP02_1_389x643", 389, 643, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0239_IN_D800_1044PPI_16BPC_1CH_LP01_1_780x1153", 780, 1153, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_L_L01_BP_S24_1200PPI_8BPC_1CH_LP11_1_593x569", 593, 569, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_R_L01_BP_S24_1000PPI_8BPC_1CH_LP15_1_677x872", 677, 872, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L01_BP_S24_1200PPI_8BPC_1CH_LP10_1_1089x1169", 1089, 1169, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1D_L_L01_BP_S24_1200PPI_8BPC_1CH_LP05_1_856x1513", 856, 1513, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0232_IN_D800_1000PPI_8BPC_1CH_LP16_1_891x1000", 891, 1000, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_L_L01_BP_S24_1000PPI_8BPC_1CH_LP04_1_464x607", 464, 607, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_R_L01_BP_S24_1000PPI_8BPC_1CH_LP02_1_565x479", 565, 479, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_110_WT_D800_1109PPI_16BPC_1CH_LP03_1_855x642", 855, 642, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_5A_X_027_IN_D800_1109PPI_16BPC_1CH_LP05_1_682x690", 682, 690, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_5A_X_027_IN_D800_1109PPI_16BPC_1CH_LP06_1_669x876", 669, 876, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1D_L_L01_BP_S24_1200PPI_8BPC_1CH_LP03_1_757x1104", 757, 1104, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_110_WT_D800_1109PPI_16BPC_1CH_LP08_1_431x381", 431, 381, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1C_R_L01_BP_S24_1000PPI_8BPC_1CH_LP02_1_735x836", 735, 836, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1E_L_L01_BP_S24_1000PPI_8BPC_1CH_LP02_1_660x981", 660, 981, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_R_L01_BP_S24_1200PPI_8BPC_1CH_LP08_1_640x678", 640, 678, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0239_IN_D800_1000PPI_8BPC_1CH_LP01_1_747x1104", 747, 1104, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_5A_X_027_IN_D800_1000PPI_8BPC_1CH_LP06_1_603x790", 603, 790, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0233_IN_D800_1044PPI_16BPC_1CH_LP07_1_615x537", 615, 537, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_2B_X_L02_BP_S24_1000PPI_8BPC_1CH_LP04_1_867x582", 867, 582, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L02_BP_S24_1200PPI_8BPC_1CH_LP09_1_667x572", 667, 572, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_4E_X_089_IN_D800_1112PPI_16BPC_1CH_LP09_1_551x1091", 551, 1091, 1112, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_6D_X_110_WT_D800_1000PPI_8BPC_1CH_LP01_1_720x563", 720, 563, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1G_L_L01_BP_S24_1000PPI_8BPC_1CH_LP02_1_770x794", 770, 794, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0230_IN_D800_1044PPI_16BPC_1CH_LP07_1_922x1007", 922, 1007, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1G_R_L01_BP_S24_1000PPI_8BPC_1CH_LP05_1_840x699", 840, 699, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1E_R_L01_BP_S24_1000PPI_8BPC_1CH_LP03_1_736x1088", 736, 1088, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0230_IN_D800_1000PPI_8BPC_1CH_LP08_1_892x835", 892, 835, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_5A_X_028_IN_D800_1000PPI_8BPC_1CH_LP03_1_994x652", 994, 652, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1D_L_L01_BP_S24_1000PPI_8BPC_1CH_LP03_1_631x920", 631, 920, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L02_BP_S24_1000PPI_8BPC_1CH_LP09_1_556x477", 556, 477, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1D_R_L01_BP_S24_1200PPI_8BPC_1CH_LP03_1_891x1305", 891, 1305, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L02_BP_S24_1200PPI_8BPC_1CH_LP05_1_779x974", 779, 974, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_2B_X_L02_BP_S24_1200PPI_8BPC_1CH_LP06_1_1079x839", 1079, 839, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_028_IN_D800_1109PPI_16BPC_1CH_LP02_1_950x663", 950, 663, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1D_L_L01_BP_S24_1000PPI_8BPC_1CH_LP05_1_713x1261", 713, 1261, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_109_WT_D800_1000PPI_8BPC_1CH_LP05_1_1092x396", 1092, 396, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_2B_X_L01_BP_S24_1000PPI_8BPC_1CH_LP10_1_907x974", 907, 974, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1G_R_L01_BP_S24_1000PPI_8BPC_1CH_LP04_1_914x813", 914, 813, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1E_L_L01_BP_S24_1000PPI_8BPC_1CH_LP03_1_542x642", 542, 642, 1000, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6D_X_109_WT_D800_1109PPI_16BPC_1CH_LP05_1_1211x439", 1211, 439, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1H_L_L01_BP_S24_1200PPI_8BPC_1CH_LP15_1_673x839", 673, 839, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_1H_R_L01_BP_S24_1200PPI_8BPC_1CH_LP15_1_812x1047", 812, 1047, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0233_IN_D800_1000PPI_8BPC_1CH_LP07_1_589x514", 589, 514, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_5A_X_027_IN_D800_1109PPI_16BPC_1CH_LP02_1_914x832", 914, 832, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_6D_X_110_WT_D800_1000PPI_8BPC_1CH_LP08_1_389x344", 389, 344, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_1G_L_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_924x953", 924, 953, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_028_IN_D800_1000PPI_8BPC_1CH_LP02_1_857x598", 857, 598, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1H_L_L01_BP_S24_1200PPI_8BPC_1CH_LP04_1_557x729", 557, 729, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_028_IN_D800_1109PPI_16BPC_1CH_LP01_1_1006x791", 1006, 791, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_5A_X_028_IN_D800_1109PPI_16BPC_1CH_LP05_1_807x760", 807, 760, 1109, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1E_R_L01_BP_S24_1200PPI_8BPC_1CH_LP03_1_883x1306", 883, 1306, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_6A_X_210_BT_D800_1430PPI_16BPC_1CH_LP01_1_579x839", 579, 839, 1430, 16, elft.FRCTLatentImpression,
		elft.MethodStickysidePowder),
	latent("00002357_4E_X_089_IN_D800_1000PPI_8BPC_1CH_LP09_1_496x981", 496, 981, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0239_IN_D800_1044PPI_16BPC_1CH_LP16_1_827x1024", 827, 1024, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_2B_X_L02_BP_S24_1200PPI_8BPC_1CH_LP04_1_1041x699", 1041, 699, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_3_X_0239_IN_D800_1000PPI_8BPC_1CH_LP16_1_792x981", 792, 981, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_1E_L_L01_BP_S24_1200PPI_8BPC_1CH_LP03_1_650x770", 650, 770, 1200, 8, elft.FRCTLatentLift,
		elft.MethodBlackPowder),
	latent("00002357_5A_X_028_IN_D800_1000PPI_8BPC_1CH_LP05_1_728x685", 728, 685, 1000, 8, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0230_IN_D800_1044PPI_16BPC_1CH_LP02_1_406x671", 406, 671, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
	latent("00002357_3_X_0230_IN_D800_1044PPI_16BPC_1CH_LP08_1_931x872", 931, 872, 1044, 16, elft.FRCTLatentImpression,
		elft.MethodIndanedione, elft.MethodLaser),
}
